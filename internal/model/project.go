package model

type Project struct {
	// Unique identifier of the project.
	ID int64
	// Human-readable project name.
	Name string
	// Construction site address.
	Address string
}

type CreateProjectParams struct {
	Name    string
	Address string
}
