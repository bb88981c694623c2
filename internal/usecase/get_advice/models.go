package get_advice

// Request модель запроса советов
type Request struct {
	ActivityID string
}

// Response модель ответа
type Response struct {
	ActivityID string
	Location   string
	Category   string
	Text       string
	Fallback   bool // текст-заглушка вместо совета
}
