package config

// PaymentMethod is one of the payment categories the wizard can offer.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPayPal     PaymentMethod = "paypal"
	PaymentCash       PaymentMethod = "cash"
)

// creditCardIcons are the icon names that light up the credit-card category.
var creditCardIcons = map[string]struct{}{
	"visa":       {},
	"mastercard": {},
	"amex":       {},
	"discover":   {},
	"unionpay":   {},
}

// PaymentMethods derives the offered categories from the configured icon set,
// in canonical order. A category appears when at least one of its icon names
// is configured.
func (c Customization) PaymentMethods() []PaymentMethod {
	var (
		card, paypal, cash bool
	)
	for _, icon := range c.PaymentIcons {
		if _, ok := creditCardIcons[icon]; ok {
			card = true
			continue
		}
		switch icon {
		case "paypal":
			paypal = true
		case "cash":
			cash = true
		}
	}

	var out []PaymentMethod
	if card {
		out = append(out, PaymentCreditCard)
	}
	if paypal {
		out = append(out, PaymentPayPal)
	}
	if cash {
		out = append(out, PaymentCash)
	}
	return out
}

// DefaultPaymentMethod is the pre-selected category: cash when offered,
// otherwise the first available one.
func (c Customization) DefaultPaymentMethod() (PaymentMethod, bool) {
	methods := c.PaymentMethods()
	if len(methods) == 0 {
		return "", false
	}
	for _, method := range methods {
		if method == PaymentCash {
			return method, true
		}
	}
	return methods[0], true
}

// PaymentOffered reports whether a payment category is available.
func (c Customization) PaymentOffered(m PaymentMethod) bool {
	for _, offered := range c.PaymentMethods() {
		if offered == m {
			return true
		}
	}
	return false
}

// Valid reports whether the value is a known payment category.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentCash:
		return true
	}
	return false
}

// Label returns the customer-facing name of a payment category.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentPayPal:
		return "PayPal"
	case PaymentCash:
		return "Cash"
	}
	return string(m)
}
