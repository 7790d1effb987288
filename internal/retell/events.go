package retell

// Webhook event kinds Retell delivers. Anything else is acknowledged and
// ignored so new vendor events cannot break ingestion.
const (
	EventCallStarted            = "call_started"
	EventCallEnded              = "call_ended"
	EventCallAnalyzed           = "call_analyzed"
	EventCallRecordingCompleted = "call_recording_completed"
)

// Event is the vendor webhook envelope. Only the fields the order pipeline
// reads are modeled; unknown vendor fields are dropped by the decoder.
type Event struct {
	Kind string     `json:"event"`
	Call *Call      `json:"call"`
	Data *EventData `json:"data"`
}

// CallID is nil-safe; webhooks for some event kinds omit the call object.
func (e Event) CallID() string {
	if e.Call == nil {
		return ""
	}
	return e.Call.CallID
}

type Call struct {
	CallID     string `json:"call_id"`
	Transcript string `json:"transcript"`
	// CustomAnalysisData is a JSON-encoded order payload the agent attaches
	// when the post-call analysis is configured for structured output.
	CustomAnalysisData string `json:"custom_analysis_data"`
}

type EventData struct {
	Analysis     *Analysis `json:"analysis"`
	RecordingURL string    `json:"recording_url"`
}

type Analysis struct {
	Intent   string    `json:"intent"`
	Entities *Entities `json:"entities"`
}

const IntentPlaceOrder = "place_order"

type Entities struct {
	Items        []EntityItem  `json:"items"`
	OrderType    string        `json:"orderType"`
	CustomerInfo *CustomerInfo `json:"customerInfo"`
}

type EntityItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderPayload is the shape of Call.CustomAnalysisData once decoded.
type OrderPayload struct {
	Items           []EntityItem `json:"items"`
	OrderType       string       `json:"orderType"`
	CustomerName    string       `json:"customerName"`
	CustomerPhone   string       `json:"customerPhone"`
	CustomerAddress string       `json:"customerAddress"`
}
