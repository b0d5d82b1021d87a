package messages

// Picker messages for interactive selection prompts.
const (
	// PickerRequiresTerminal reports a prompt invoked without a usable terminal.
	PickerRequiresTerminal = "interactive selection requires a terminal"
	// PickerCancelled reports the user aborted the prompt.
	PickerCancelled = "selection cancelled"

	PickerHintCancel = "cancel"
	PickerHintExit   = "exit"
)
