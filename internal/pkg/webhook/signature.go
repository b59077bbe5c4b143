package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingSecret    = errors.New("webhook secret not configured")
	ErrMalformedHeader  = errors.New("malformed signature header")
	ErrNoValidSignature = errors.New("no matching signature")
	ErrTimestampExpired = errors.New("signature timestamp outside tolerance")
)

// Verifier checks Stripe-style "t=<unix>,v1=<hex>" signatures over "<t>.<body>".
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), tolerance: tolerance, now: time.Now}
}

func (v *Verifier) WithNow(now func() time.Time) *Verifier {
	v.now = now
	return v
}

func (v *Verifier) Verify(body []byte, header string) error {
	if len(v.secret) == 0 {
		return ErrMissingSecret
	}

	var ts int64
	var sigs []string
	haveTS := false
	for _, part := range strings.Split(header, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return ErrMalformedHeader
			}
			ts, haveTS = n, true
		case "v1":
			sigs = append(sigs, val)
		}
	}
	if !haveTS || len(sigs) == 0 {
		return ErrMalformedHeader
	}

	expected := v.Sign(body, ts)
	matched := false
	for _, s := range sigs {
		if hmac.Equal([]byte(s), []byte(expected)) {
			matched = true
			break
		}
	}
	if !matched {
		return ErrNoValidSignature
	}

	if v.tolerance > 0 {
		age := v.now().Sub(time.Unix(ts, 0))
		if age > v.tolerance || age < -v.tolerance {
			return ErrTimestampExpired
		}
	}
	return nil
}

// Sign returns the hex v1 signature for body at unix time ts.
func (v *Verifier) Sign(body []byte, ts int64) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Header builds a header value the way the payment provider sends it.
func (v *Verifier) Header(body []byte, ts int64) string {
	return "t=" + strconv.FormatInt(ts, 10) + ",v1=" + v.Sign(body, ts)
}
