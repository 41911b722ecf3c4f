package domain

// WebhookEvent é o payload entregue pela Evolution API quando uma
// mensagem chega na instância de WhatsApp da loja
type WebhookEvent struct {
	Event    string      `json:"event"`
	Instance string      `json:"instance"`
	Data     WebhookData `json:"data"`
}

type WebhookData struct {
	Key              MessageKey     `json:"key"`
	PushName         string         `json:"pushName"`
	Message          MessageContent `json:"message"`
	MessageTimestamp int64          `json:"messageTimestamp"`
}

type MessageKey struct {
	RemoteJID string `json:"remoteJid"`
	FromMe    bool   `json:"fromMe"`
	ID        string `json:"id"`
}

type MessageContent struct {
	Conversation    string           `json:"conversation"`
	ExtendedMessage *ExtendedMessage `json:"extendedTextMessage,omitempty"`
}

type ExtendedMessage struct {
	Text string `json:"text"`
}

// Body devolve o texto da mensagem independente do formato usado pelo
// remetente (mensagem simples ou estendida)
func (m MessageContent) Body() string {
	if m.Conversation != "" {
		return m.Conversation
	}
	if m.ExtendedMessage != nil {
		return m.ExtendedMessage.Text
	}
	return ""
}

// ConnectionState é o estado da instância na Evolution API
type ConnectionState struct {
	Instance string `json:"instance"`
	State    string `json:"state"`
}
