package models

// BeerType is the style a beer is catalogued under.
type BeerType string

const (
	Lager    BeerType = "LAGER"
	Malzbier BeerType = "MALZBIER"
	Witbier  BeerType = "WITBIER"
	Weiss    BeerType = "WEISS"
	Ale      BeerType = "ALE"
	IPA      BeerType = "IPA"
	Stout    BeerType = "STOUT"
)

// BeerTypes lists every accepted BeerType in declaration order.
var BeerTypes = []BeerType{Lager, Malzbier, Witbier, Weiss, Ale, IPA, Stout}

// Valid reports whether t is one of the known beer types.
func (t BeerType) Valid() bool {
	for _, known := range BeerTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Beer represents a beer tracked in the stock.
type Beer struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Max      int      `json:"max"`
	Quantity int      `json:"quantity"`
	Type     BeerType `json:"type"`
}
