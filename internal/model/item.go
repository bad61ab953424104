package model

// Record is one stock entry flattened out of the inventory.
// It is what search and low-stock queries hand back to callers.
type Record struct {
	Item     string `json:"item"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}
