package models

// RequestDetails is attached to the request context by the middleware and
// picked up by the logger for request-scoped fields.
type RequestDetails struct {
	RequestID      string                 `json:"request_id"`
	IP             string                 `json:"ip"`
	UserAgent      string                 `json:"user_agent"`
	HTTPMethod     string                 `json:"http_method"`
	Path           string                 `json:"path"`
	OperationName  string                 `json:"operation_name"`
	RequestTime    string                 `json:"request_time"`
	ResponseTime   string                 `json:"response_time,omitempty"`
	Status         int                    `json:"status,omitempty"`
	RequestParams  map[string]interface{} `json:"request_params,omitempty"`
	ResponseParams map[string]interface{} `json:"response_params,omitempty"`
}
