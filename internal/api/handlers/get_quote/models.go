package get_quote

import getQuote "github.com/m04kA/SMC-AdventureBooking/internal/usecase/get_quote"

// QuoteResponse HTTP response model.
// totalPrice сохраняется в бронирование, tax и totalWithTax только для отображения.
type QuoteResponse struct {
	ActivityID   string  `json:"activityId"`
	UnitPrice    int64   `json:"unitPrice"`
	Guests       int64   `json:"guests"`
	MinGuests    int     `json:"minGuests"`
	MaxGuests    int     `json:"maxGuests"`
	LineTotal    int64   `json:"lineTotal"`
	ServiceFee   int64   `json:"serviceFee"`
	TotalPrice   int64   `json:"totalPrice"`
	TaxRate      float64 `json:"taxRate"`
	Tax          int64   `json:"tax"`
	TotalWithTax int64   `json:"totalWithTax"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	q := resp.Quote
	return &QuoteResponse{
		ActivityID:   resp.ActivityID,
		UnitPrice:    q.UnitPrice,
		Guests:       q.Guests,
		MinGuests:    resp.MinGuests,
		MaxGuests:    resp.MaxGuests,
		LineTotal:    q.LineTotal,
		ServiceFee:   q.ServiceFee,
		TotalPrice:   q.GrandTotal,
		TaxRate:      q.TaxRate,
		Tax:          q.Tax,
		TotalWithTax: q.TotalWithTax,
	}
}
