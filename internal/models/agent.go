package models

// AgentConfig holds the editable assistant behavior text shown and spoken to
// customers. All fields are plain strings consumed as model context.
type AgentConfig struct {
	ContactNumber       string `json:"contactNumber"`
	WelcomeMessage      string `json:"welcomeMessage"`
	ConfirmationMessage string `json:"confirmationMessage"`
	OutOfStockMessage   string `json:"outOfStockMessage"`
	AddressPrompt       string `json:"addressPrompt"`
	AdditionalInfo      string `json:"additionalInfo"`
}

// AdminAuth is the singleton dashboard credential pair.
type AdminAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LastCustomer remembers the contact fields of the most recent order so the
// assistant can greet a returning customer and offer to reuse them.
type LastCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
