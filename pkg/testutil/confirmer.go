package testutil

// RecordingConfirmer answers every prompt with Answer and records prompts
type RecordingConfirmer struct {
	Answer  bool
	Err     error
	Prompts []string
}

// Confirm implements types.Confirmer
func (c *RecordingConfirmer) Confirm(prompt string) (bool, error) {
	c.Prompts = append(c.Prompts, prompt)
	if c.Err != nil {
		return false, c.Err
	}
	return c.Answer, nil
}

// Calls returns how many times Confirm was invoked
func (c *RecordingConfirmer) Calls() int {
	return len(c.Prompts)
}
