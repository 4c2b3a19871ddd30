package model

// ContractRequest is the inbound request for one contract workflow run.
// All four fields must be valid before any downstream call is made.
type ContractRequest struct {
	FairID       int
	HallID       int
	SquareMeters int
	CompanyID    string
}

// ContractData is the merged input handed to the renderer: the requested
// stand plus the company record resolved from the directory.
type ContractData struct {
	FairID       int
	HallID       int
	HallName     string
	SquareMeters int
	Company      CompanyRecord
}

// ContractArtifact references a generated contract document. The workflow
// never inspects the artifact bytes.
type ContractArtifact struct {
	Filename string
	FilePath string
}
