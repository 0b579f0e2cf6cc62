package user

// Documents holds the object-store keys of the three images a courier must
// submit at registration. Keys are opaque; the objects themselves live in the
// external document store.
type Documents struct {
	addressProof string
	vehicleDoc   string
	idPhoto      string
}

// NewDocuments creates a document set from stored object keys.
// Empty keys are allowed here; completeness is checked by IsComplete.
func NewDocuments(addressProof, vehicleDoc, idPhoto string) Documents {
	return Documents{
		addressProof: addressProof,
		vehicleDoc:   vehicleDoc,
		idPhoto:      idPhoto,
	}
}

// AddressProof returns the stored key of the address proof image.
func (d Documents) AddressProof() string { return d.addressProof }

// VehicleDoc returns the stored key of the vehicle document image.
func (d Documents) VehicleDoc() string { return d.vehicleDoc }

// IDPhoto returns the stored key of the identity photo image.
func (d Documents) IDPhoto() string { return d.idPhoto }

// IsComplete reports whether all three documents are present.
func (d Documents) IsComplete() bool {
	return d.addressProof != "" && d.vehicleDoc != "" && d.idPhoto != ""
}
