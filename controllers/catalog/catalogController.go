package catalogController

import (
	"encoding/json"
	"log"
	"strings"

	"learnhub/config"
	"learnhub/middleware"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// catalogClient returns a resty client configured for the upstream catalog API.
func catalogClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.CatalogBaseURL).
		SetHeader("Authorization", "Bearer "+config.AppConfig.CatalogAPIKey).
		SetHeader("Accept", "application/json")
}

// decodeUpstream parses the upstream response body as JSON. The catalog
// occasionally answers with an HTML error page, so a parse failure is
// reported as a bad gateway with a short body snippet for debugging.
func decodeUpstream(c *fiber.Ctx, resp *resty.Response, out interface{}) (bool, error) {
	body := resp.Body()
	if err := json.Unmarshal(body, out); err != nil {
		snippet := string(body)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		log.Printf("[CATALOG] upstream returned non-JSON (status %d): %s", resp.StatusCode(), snippet)
		return false, middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Upstream catalog returned an unexpected response!", fiber.Map{
			"upstream_status": resp.StatusCode(),
			"snippet":         snippet,
		})
	}
	return true, nil
}

// GetModules proxies the upstream module catalog, dropping placeholder
// rows that were never published.
func GetModules(c *fiber.Ctx) error {
	resp, err := catalogClient().R().Get("/modules")
	if err != nil {
		log.Println("[CATALOG] modules request failed:", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to reach catalog service!", nil)
	}

	var modules []map[string]interface{}
	if ok, respErr := decodeUpstream(c, resp, &modules); !ok {
		return respErr
	}

	published := make([]map[string]interface{}, 0, len(modules))
	for _, module := range modules {
		if title, ok := module["title"].(string); ok && strings.Contains(title, "FILE_ID") {
			continue
		}
		published = append(published, module)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", published)
}

// GetCompletions proxies the upstream completion list for a given email.
func GetCompletions(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	resp, err := catalogClient().R().
		SetQueryParam("email", email).
		Get("/completions")
	if err != nil {
		log.Println("[CATALOG] completions request failed:", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to reach catalog service!", nil)
	}

	var completions interface{}
	if ok, respErr := decodeUpstream(c, resp, &completions); !ok {
		return respErr
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completions fetched successfully!", completions)
}

// MarkComplete forwards a module completion to the upstream catalog.
func MarkComplete(c *fiber.Ctx) error {
	payload, ok := c.Locals("validatedCompletion").(map[string]interface{})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid completion payload!", nil)
	}

	resp, err := catalogClient().R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/mark-complete")
	if err != nil {
		log.Println("[CATALOG] mark-complete request failed:", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to reach catalog service!", nil)
	}

	var result interface{}
	if ok, respErr := decodeUpstream(c, resp, &result); !ok {
		return respErr
	}

	if resp.StatusCode() >= 400 {
		return middleware.JsonResponse(c, resp.StatusCode(), false, "Catalog rejected the completion!", result)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked complete!", result)
}
