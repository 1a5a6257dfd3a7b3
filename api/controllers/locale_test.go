package controllers

import (
	"net/http/httptest"
	"testing"
)

func TestLocaleFromRequest(t *testing.T) {
	cases := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "defaults to uzbek", target: "/api/v1/products", want: "uz"},
		{name: "query param wins", target: "/api/v1/products?lang=ru", accept: "uz", want: "ru"},
		{name: "unknown query falls through", target: "/api/v1/products?lang=fr", accept: "ru", want: "ru"},
		{name: "accept language header", target: "/api/v1/products", accept: "ru-RU,ru;q=0.9,en;q=0.8", want: "ru"},
		{name: "skips unsupported entries", target: "/api/v1/products", accept: "en-US,en;q=0.9,uz;q=0.5", want: "uz"},
		{name: "unsupported everything", target: "/api/v1/products", accept: "en,fr", want: "uz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := localeFromRequest(req); got != tc.want {
				t.Fatalf("expected locale %q got %q", tc.want, got)
			}
		})
	}
}
