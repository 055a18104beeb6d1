package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "FocoDietPlanner/1.0"

type Nutrient struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

type MealMenu struct {
	MealPeriod  string `json:"mealPeriod"`
	SubLocation string `json:"subLocation,omitempty"`
}

type DateAvailable struct {
	Date  string     `json:"date"`
	Menus []MealMenu `json:"menus"`
}

// APIItem is one entry of the dining menu API's mealItems array.
type APIItem struct {
	ID                string          `json:"id"`
	ItemName          string          `json:"itemName"`
	MainLocationLabel string          `json:"mainLocationLabel"`
	IsAnalyzed        bool            `json:"isAnalyzed"`
	Nutrients         []Nutrient      `json:"nutrients"`
	DatesAvailable    []DateAvailable `json:"datesAvailable"`
	PortionSize       string          `json:"portionSize,omitempty"`
	ImagePath         string          `json:"imagePath,omitempty"`
	Ingredients       string          `json:"ingredients,omitempty"`
}

type menuResponse struct {
	MealItems []APIItem `json:"mealItems"`
}

// Decode parses a raw menu API payload.
func Decode(raw []byte) ([]APIItem, error) {
	var r menuResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("failed to parse menu API JSON: %w", err)
	}
	return r.MealItems, nil
}

// APIDate converts 2006-01-02 to the API's 20060102 form.
func APIDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// Client calls the dining menu API.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch returns the raw menu payload for date (YYYY-MM-DD).
func (c *Client) Fetch(ctx context.Context, date string) ([]byte, error) {
	u := c.baseURL + "?dates=" + url.QueryEscape(APIDate(date))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call menu API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu API response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API returned %d: %s - %s", resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(body)))
	}
	return body, nil
}
