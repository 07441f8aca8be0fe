package pkg

type Action string

const (
	ActionReset  Action = "Reset"
	ActionResign Action = "Resign"
	ActionExit   Action = "Exit"
)
