package email

// Template names an HTML email template file under templates/emails.
type Template string

const (
	// TemplateOrderConfirmation confirms a newly placed order.
	TemplateOrderConfirmation Template = "order_confirmation"
)
