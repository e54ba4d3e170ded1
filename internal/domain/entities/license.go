package entities

import "time"

// License is the water-use authorization readings and contracts attach to.
type License struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	HolderName string    `json:"holder_name"`
	CreatedAt  time.Time `json:"created_at"`
}
