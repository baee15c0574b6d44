package paypal

import "encoding/json"

const (
	IntentCapture     = "CAPTURE"
	UserActionPayNow  = "PAY_NOW"
	ReturnFlowAuto    = "AUTO"
	ReturnFlowManual  = "MANUAL"
	requestIDHeader   = "PayPal-Request-Id"
	maxResponseLength = 1 << 20
)

type CreateOrderRequest struct {
	Intent        string         `json:"intent"`
	PaymentSource PaymentSource  `json:"payment_source"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

type PaymentSource struct {
	PayPal PayPalSource `json:"paypal"`
}

type PayPalSource struct {
	EmailAddress      string            `json:"email_address,omitempty"`
	ExperienceContext ExperienceContext `json:"experience_context"`
}

type ExperienceContext struct {
	UserAction       string            `json:"user_action"`
	ReturnURL        string            `json:"return_url"`
	CancelURL        string            `json:"cancel_url"`
	AppSwitchContext *AppSwitchContext `json:"app_switch_context,omitempty"`
}

// AppSwitchContext lets a mobile buyer jump to the PayPal app and back.
type AppSwitchContext struct {
	MobileWeb MobileWebContext `json:"mobile_web"`
}

type MobileWebContext struct {
	ReturnFlow     string `json:"return_flow"`
	BuyerUserAgent string `json:"buyer_user_agent"`
}

type PurchaseUnit struct {
	Amount Amount `json:"amount"`
}

type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Response is a successful processor reply, relayed to the browser untouched.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}
