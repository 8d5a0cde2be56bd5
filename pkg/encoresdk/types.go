package encoresdk

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every failed request except concert
// validation.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid credentials"`
}

// ValidationErrorResponse names each rejected concert field.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Signer   string `json:"signer" example:"ok"`
}

// ============================================================================
// Auth
// ============================================================================

// User is the public view of an account. Secrets never leave the server.
type User struct {
	ID               string `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZK"`
	Email            string `json:"email" example:"fan@example.com"`
	Name             string `json:"name" example:"Sam"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

type RegisterRequest struct {
	Email    string `json:"email" example:"fan@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	Name     string `json:"name" example:"Sam"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"fan@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// AuthResponse carries a fully authenticated token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LoginResponse is either a completed login (User and Token set) or a
// second-factor challenge (RequireTwoFactor, UserID and TempToken set).
type LoginResponse struct {
	User             *User  `json:"user,omitempty"`
	Token            string `json:"token,omitempty"`
	RequireTwoFactor bool   `json:"requireTwoFactor,omitempty"`
	UserID           string `json:"userId,omitempty"`
	TempToken        string `json:"tempToken,omitempty"`
}

// TwoFactorLoginRequest completes a challenged login. Token is the six digit
// code; TempToken is the partial token from the password step and may
// instead be sent as a bearer token.
type TwoFactorLoginRequest struct {
	UserID    string `json:"userId"`
	Token     string `json:"token" example:"123456"`
	TempToken string `json:"tempToken,omitempty"`
}

type TwoFactorSetupResponse struct {
	Secret  string `json:"secret" example:"JBSWY3DPEHPK3PXP"`
	QRCode  string `json:"qrCode" example:"data:image/png;base64,iVBORw0..."`
	SetupID string `json:"setupId" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZK"`
}

// TwoFactorCodeRequest carries a code for enrollment confirmation or
// disabling. SetupID pins confirmation to one enrollment attempt.
type TwoFactorCodeRequest struct {
	Token   string `json:"token" example:"123456"`
	SetupID string `json:"setupId,omitempty"`
}

type QRCodeResponse struct {
	QRCode string `json:"qrCode"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type MeResponse struct {
	User User `json:"user"`
}

// ============================================================================
// Concerts
// ============================================================================

// ConcertRequest is the payload for creating or updating a concert.
type ConcertRequest struct {
	Name     string `json:"name" example:"Rock Night"`
	Genre    string `json:"genre" example:"Rock"`
	Price    string `json:"price" example:"$59.99"`
	Location string `json:"location" example:"London"`
	Date     string `json:"date" example:"2030-04-12"`
	ImageURL string `json:"imageUrl" example:"/EventPageImages/images.jpeg"`
}

type Concert struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Rock Night"`
	Genre    string `json:"genre" example:"Rock"`
	Price    string `json:"price" example:"$59.99"`
	Location string `json:"location" example:"London"`
	Date     string `json:"date" example:"2030-04-12"`
	ImageURL string `json:"imageUrl" example:"/EventPageImages/images.jpeg"`
}

type PriceThresholds struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

type ConcertListResponse struct {
	Concerts        []Concert       `json:"concerts"`
	TotalCount      int             `json:"totalCount"`
	CurrentPage     int             `json:"currentPage"`
	TotalPages      int             `json:"totalPages"`
	PriceThresholds PriceThresholds `json:"priceThresholds"`
	LastUpdate      string          `json:"lastUpdate" example:"2030-01-15T12:00:00.000Z"`
}

// ConcertQuery holds the optional listing parameters. Zero values are
// omitted from the query string.
type ConcertQuery struct {
	Search   string
	Genres   []string
	City     string
	Country  string
	MinPrice *float64
	MaxPrice *float64
	OrderBy  string
	Page     int
	Limit    int
}

type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type AnalyticsResponse struct {
	PriceDistributionData []NamedValue `json:"priceDistributionData"`
	GenreDistributionData []NamedValue `json:"genreDistributionData"`
	PriceTrendData        []PricePoint `json:"priceTrendData"`
	LastUpdate            string       `json:"lastUpdate"`
}

type GenreStat struct {
	GenreName        string  `json:"genre_name"`
	ConcertCount     int64   `json:"concert_count"`
	MinPrice         float64 `json:"min_price"`
	MaxPrice         float64 `json:"max_price"`
	AvgPrice         float64 `json:"avg_price"`
	UpcomingConcerts int64   `json:"upcoming_concerts"`
	PastConcerts     int64   `json:"past_concerts"`
}

type VenueStat struct {
	UniqueVenues  int64  `json:"unique_venues"`
	EarliestDate  string `json:"earliest_date"`
	LatestDate    string `json:"latest_date"`
	TotalConcerts int64  `json:"total_concerts"`
}

type StatisticsResponse struct {
	GenreStats    []GenreStat `json:"genreStats"`
	VenueStats    VenueStat   `json:"venueStats"`
	ExecutionTime string      `json:"executionTime" example:"1.23ms"`
}

// BulkOperation is one queued mutation. ID is required for update and
// delete.
type BulkOperation struct {
	Type string          `json:"type" example:"create"`
	ID   int64           `json:"id,omitempty"`
	Data *ConcertRequest `json:"data,omitempty"`
}

type BulkRequest struct {
	Operations []BulkOperation `json:"operations"`
}

type BulkResult struct {
	Success   bool              `json:"success"`
	Operation string            `json:"operation"`
	ID        int64             `json:"id,omitempty"`
	Error     string            `json:"error,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type BulkResponse struct {
	Results []BulkResult `json:"results"`
}

// ============================================================================
// Filters
// ============================================================================

type FilterOptionsResponse struct {
	Genres    []string            `json:"genres"`
	OrderBy   []string            `json:"orderBy"`
	Countries []string            `json:"countries"`
	Cities    map[string][]string `json:"cities"`
}
