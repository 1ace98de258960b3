package events

type Visibility string

const (
	VisibilityPublic        Visibility = "public"
	VisibilityRequesterOnly Visibility = "requester_only"
)

// Reply es lo que el dispatcher le entrega al usuario.
type Reply struct {
	Text       string
	Visibility Visibility
}

func publicReply(text string) Reply {
	return Reply{Text: text, Visibility: VisibilityPublic}
}

// ErrorReply arma la respuesta privada para un comando fallido.
func ErrorReply(err error) Reply {
	return Reply{Text: UserMessage(err), Visibility: VisibilityRequesterOnly}
}
