// Replay posts a canned idea-creation payload at a running instance and
// pretty-prints the response. Handy when poking at prompt or policy changes
// without waiting for a real webhook delivery.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/k0kubun/pp/v3"
)

const samplePayload = `{
  "event": "ideas/idea.created",
  "idea": {
    "id": "42",
    "reference_num": "IDEA-42",
    "name": "Add dark mode",
    "description": "<p>add a dark mode toggle</p>",
    "custom_fields": {
      "organization": "Acme Corp"
    }
  }
}`

func main() {
	url := flag.String("url", "http://localhost:8080/aha/webhook", "webhook endpoint to hit")
	payload := flag.String("payload", samplePayload, "JSON body to send")
	flag.Parse()

	resp, err := http.Post(*url, "application/json", bytes.NewBufferString(*payload))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	log.Printf("status: %s", resp.Status)

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Fatalf("response is not JSON: %v", err)
	}

	pp.Print(body)
}
