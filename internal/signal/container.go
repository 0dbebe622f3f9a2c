package signal

// Receiver handles a signal.
type Receiver func(e *EventArgs)

// Container binds a receiver to a signal name.
// A disabled container stays registered but is skipped during dispatch.
type Container struct {
	name     Operation
	receiver Receiver
	enabled  bool
}

// NewContainer returns an enabled container for the given name and receiver.
func NewContainer(name Operation, receiver Receiver) *Container {
	return &Container{
		name:     name,
		receiver: receiver,
		enabled:  true,
	}
}

// Name returns the signal name of the container.
func (c *Container) Name() Operation { return c.name }

// Enabled returns whether the container takes part in dispatch.
func (c *Container) Enabled() bool { return c.enabled }

// SetEnabled toggles whether the container takes part in dispatch.
func (c *Container) SetEnabled(enabled bool) { c.enabled = enabled }

// Receive calls the receiver with the given event.
func (c *Container) Receive(e *EventArgs) {
	if c.receiver != nil {
		c.receiver(e)
	}
}
