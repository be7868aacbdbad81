package handlers

// BeerRequest is the body of POST /api/v1/beers. The int fields are pointers
// so that a missing value can be told apart from zero.
type BeerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Brand    string `json:"brand" validate:"required,min=1,max=200"`
	Max      *int   `json:"max" validate:"required,gte=0"`
	Quantity *int   `json:"quantity" validate:"required,gte=0,lte=100"`
	Type     string `json:"type" validate:"required,beertype"`
}

type BeerResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Max      int    `json:"max"`
	Quantity int    `json:"quantity"`
	Type     string `json:"type"`
}

type QuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=1,max=100"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorsResponse struct {
	Errors []BeerValidationError `json:"errors"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovementResponse struct {
	ID        int64  `json:"id"`
	BeerID    int64  `json:"beer_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta"`
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ImportBeersResult struct {
	ImportedBeersCount int                   `json:"imported"`
	Errors             []BeerValidationError `json:"errors"`
}
