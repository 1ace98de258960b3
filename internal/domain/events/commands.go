package events

const (
	CommandCreate    = "create"
	CommandUpdate    = "update"
	CommandDaysSince = "days_since"
	CommandReset     = "reset"
	CommandRemove    = "remove"
	CommandList      = "list"
)

// Argument describe un parámetro de un slash command.
type Argument struct {
	Name         string
	Description  string
	Autocomplete bool
}

// Command describe un comando para que el dispatcher lo registre en la plataforma de chat.
type Command struct {
	Name        string
	Description string
	Arguments   []Argument
}

var (
	argName = Argument{
		Name:        "name",
		Description: "Name of the event.",
	}
	argNameAutocomplete = Argument{
		Name:         "name",
		Description:  "Name of the event.",
		Autocomplete: true,
	}
	argText = Argument{
		Name:        "text",
		Description: `Text for the event (e.g. "It has been x days since [text]")`,
	}
)

// Commands devuelve los seis comandos en orden de registro.
func Commands() []Command {
	return []Command{
		{Name: CommandCreate, Description: "Create a new event.", Arguments: []Argument{argName, argText}},
		{Name: CommandUpdate, Description: "Update the text for an existing event.", Arguments: []Argument{argNameAutocomplete, argText}},
		{Name: CommandDaysSince, Description: "Show the number of days since the last event occurence.", Arguments: []Argument{argNameAutocomplete}},
		{Name: CommandReset, Description: "Reset the time since the last event occurence.", Arguments: []Argument{argNameAutocomplete}},
		{Name: CommandRemove, Description: "Remove an existing event.", Arguments: []Argument{argNameAutocomplete}},
		{Name: CommandList, Description: "List all existing events."},
	}
}
