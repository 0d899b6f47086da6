package cologne

// apiDefinition mirrors one element of the CDSL lookup response.
type apiDefinition struct {
	Dictionary string `json:"dictionary"`
	Definition string `json:"definition"`
}
