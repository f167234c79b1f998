package domain

// ChatMessage representa un turno previo de la conversación.
// Se acepta por compatibilidad con los clientes pero no se usa.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse es la respuesta de POST /api/chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}
