package main

import (
	"fmt"
	"strconv"
	"strings"

	"voiceorder-service/internal/ordering/model"
)

// parseItems разбирает --item "name:qty[:style[:notes]]".
// Заметки могут содержать двоеточия.
func parseItems(raw []string) ([]model.LineItemRequest, error) {
	out := make([]model.LineItemRequest, 0, len(raw))
	for _, s := range raw {
		parts := strings.SplitN(s, ":", 4)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, fmt.Errorf("item %q: empty name", s)
		}
		req := model.LineItemRequest{Name: name, Quantity: 1}
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, fmt.Errorf("item %q: bad quantity: %w", s, err)
			}
			req.Quantity = n
		}
		if len(parts) > 2 {
			req.Style = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			req.Notes = strings.TrimSpace(parts[3])
		}
		out = append(out, req)
	}
	return out, nil
}
