package dto

// Res is the generic coded response used by the middleware layer.
type Res struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
}
