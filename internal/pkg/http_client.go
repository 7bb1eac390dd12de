package pkg

import (
	"net/http"
	"time"
)

var HTTPClient = &http.Client{
	Timeout: time.Second * 10,
}
