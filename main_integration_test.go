// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

//go:build integration

/*
To run these tests, specify `-tags=integration` when running `go test`.
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

const (
	host      = "127.0.0.1:8282"
	authority = "http://127.0.0.1:8282"

	retryCount  = 10
	dialTimeout = 250 * time.Millisecond
)

// client does not follow redirects so their status can be checked.
var client = &http.Client{
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
	Timeout: 5 * time.Second,
}

type httpTestCase struct {
	URL                string
	Method             string
	ExpectedStatusCode int
	FormData           map[string]string
}

func (c *httpTestCase) setDefault() {
	if c.Method == "" {
		c.Method = http.MethodGet
	}

	if c.ExpectedStatusCode == 0 {
		c.ExpectedStatusCode = http.StatusOK
	}
}

// TestMain starts the server and waits for it before running tests.
func TestMain(m *testing.M) {
	host, port, _ := net.SplitHostPort(host)
	_ = os.Setenv("SCHOLARPAGE_HOST", host)
	_ = os.Setenv("SCHOLARPAGE_PORT", port)

	go func() {
		if err := run(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if !waitForServerReady() {
		log.Fatalf("Server did not start in time")
	}

	os.Exit(m.Run())
}

func waitForServerReady() bool {
	for range retryCount {
		conn, err := net.DialTimeout("tcp", host, dialTimeout)
		if err == nil {
			_ = conn.Close()

			return true
		}

		time.Sleep(dialTimeout)
	}

	return false
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	testCases := []httpTestCase{
		{URL: "/"},
		{URL: "/?lang=zh"},
		{URL: "/?tag=Colorization&from=&research=1#research"},
		{URL: "/?research=99&projects=-4&gallery=x"},
		{URL: "/zh", ExpectedStatusCode: http.StatusMovedPermanently},
		{URL: "/css/site.css"},
		{URL: "/robots.txt"},
		{URL: "/healthz"},
		{URL: "/research/HoughLaneNet/bibtex"},
		{URL: "/research/missing/bibtex", ExpectedStatusCode: http.StatusNotFound},
		{URL: "/missing", ExpectedStatusCode: http.StatusNotFound},
		{URL: "/lang/zh?returnPath=/", ExpectedStatusCode: http.StatusSeeOther},
		{URL: "/lang/fr", ExpectedStatusCode: http.StatusBadRequest},
		{
			URL:                "/settings/language",
			Method:             http.MethodPost,
			ExpectedStatusCode: http.StatusSeeOther,
			FormData:           map[string]string{"locale": "zh", "returnPath": "/#research"},
		},
		{
			URL:                "/settings/reset_all",
			Method:             http.MethodPost,
			ExpectedStatusCode: http.StatusSeeOther,
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s %s", tc.Method, tc.URL), func(t *testing.T) {
			t.Parallel()
			tc.setDefault()

			resp := makeRequest(t, buildRequest(t, authority+tc.URL, tc.Method, tc.FormData))
			defer resp.Body.Close()

			if resp.StatusCode != tc.ExpectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.ExpectedStatusCode, resp.StatusCode)
			}
		})
	}
}

func buildRequest(t *testing.T, link, method string, formData map[string]string) *http.Request {
	t.Helper()

	var body *strings.Reader

	if formData != nil || method == http.MethodPost {
		form := url.Values{}
		for k, v := range formData {
			form.Set(k, v)
		}

		body = strings.NewReader(form.Encode())
	}

	var (
		req *http.Request
		err error
	)

	if body != nil {
		req, err = http.NewRequestWithContext(context.TODO(), method, link, body)
	} else {
		req, err = http.NewRequestWithContext(context.TODO(), method, link, nil)
	}

	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return req
}

func makeRequest(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	return resp
}
