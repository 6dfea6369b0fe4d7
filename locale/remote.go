// Copyright 2024 The dtparse Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package locale

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// RemoteProvider returns a Provider that fetches a JSON-encoded locale pack
// from baseURL+"/"+name over HTTP, retrying transient failures. It is meant
// for a deployment that centralizes locale packs behind a config service
// instead of shipping them as Go literals or local files.
func RemoteProvider(baseURL string) Provider {
	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{
		Transport: cleanhttp.DefaultPooledTransport(),
		Timeout:   10 * time.Second,
	}
	client.Logger = nil
	client.RetryMax = 3

	return func(name string) (*Symbols, error) {
		url := fmt.Sprintf("%s/%s", baseURL, name)
		resp, err := client.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("locale: fetching %q: unexpected status %s", url, resp.Status)
		}

		var doc document
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			return nil, fmt.Errorf("locale: decoding %q: %w", url, err)
		}
		return doc.toSymbols(), nil
	}
}
