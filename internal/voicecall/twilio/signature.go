package twilio

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/client"
)

// SignatureHeader carries the provider's HMAC of the request URL and form parameters.
const SignatureHeader = "X-Twilio-Signature"

// SignatureValidator checks that webhook requests were signed with the account auth token.
// A nil validator accepts every request.
type SignatureValidator struct {
	validator client.RequestValidator
	baseURL   string
}

// NewSignatureValidator returns nil when authToken is empty, which disables validation.
// baseURL, when set, replaces the scheme and host seen by the server so that signatures
// computed for the public address still verify behind a proxy.
func NewSignatureValidator(authToken, baseURL string) *SignatureValidator {
	if authToken == "" {
		return nil
	}
	return &SignatureValidator{
		validator: client.NewRequestValidator(authToken),
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Valid reports whether the request carries a correct signature for its URL and form body.
func (v *SignatureValidator) Valid(r *http.Request) bool {
	if v == nil {
		return true
	}
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return false
	}
	if err := r.ParseForm(); err != nil {
		return false
	}

	params := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return v.validator.Validate(v.requestURL(r), params, signature)
}

func (v *SignatureValidator) requestURL(r *http.Request) string {
	if v.baseURL != "" {
		return v.baseURL + r.URL.RequestURI()
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// Require aborts requests with a bad signature, handing them to reject to write the response.
func (v *SignatureValidator) Require(reject gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v.Valid(c.Request) {
			c.Next()
			return
		}
		reject(c)
		c.Abort()
	}
}
