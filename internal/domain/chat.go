package domain

// ChatMessage es el cuerpo de POST /api/chat.
type ChatMessage struct {
	Message string `json:"message"`
}

// ChatReply es la respuesta del consultor.
type ChatReply struct {
	Response string `json:"response"`
}

// Rule asocia una categoria con sus palabras clave y la respuesta fija.
type Rule struct {
	Category string   `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Reply    string   `json:"reply" yaml:"reply"`
}
