package model

// IBGERegion is the macro-region a state belongs to.
type IBGERegion struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Sigla string `json:"sigla"`
}

// IBGEState is a Brazilian state as returned by the IBGE localidades API.
type IBGEState struct {
	ID     int        `json:"id"`
	Nome   string     `json:"nome"`
	Sigla  string     `json:"sigla"`
	Regiao IBGERegion `json:"regiao"`
}

// IBGECity is a municipality as returned by the IBGE localidades API.
type IBGECity struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}
