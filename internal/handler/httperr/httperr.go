package httperr

// Response is the envelope for responses the middleware writes itself,
// such as panic recovery.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
