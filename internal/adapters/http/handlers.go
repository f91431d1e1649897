package http

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

const msgNotArray = "body must be an array of coordinates"

func queryErrorMessage(r domain.CoordinateRule) string {
	return "'lat' and 'lon' query parameters required representing a valid lat/lon " + r.RangeText()
}

func bodyErrorMessage(r domain.CoordinateRule) string {
	return "body must be an array of objects containing keys 'lat' and 'lon' representing a valid lat/lon " + r.RangeText()
}

// IsOnWaterHandler classifies a single coordinate given as lat/lon query parameters.
func IsOnWaterHandler(deps *Dependencies) fiber.Handler {
	msg := queryErrorMessage(deps.Rule)

	return func(c *fiber.Ctx) error {
		args := c.Context().QueryArgs()
		if len(args.PeekMulti("lat")) > 1 || len(args.PeekMulti("lon")) > 1 {
			return errBadRequest(c, msg)
		}

		coord, ok := deps.Rule.ParsePair(c.Query("lat"), c.Query("lon"))
		if !ok {
			return errBadRequest(c, msg)
		}

		return c.JSON(deps.Classifier.Classify(c.UserContext(), coord))
	}
}

// IsOnWaterBatchHandler classifies a JSON array of coordinates.
// The whole batch is rejected if any element is invalid.
func IsOnWaterBatchHandler(deps *Dependencies) fiber.Handler {
	msg := bodyErrorMessage(deps.Rule)

	return func(c *fiber.Ctx) error {
		if !c.Is("json") {
			return errBadRequest(c, msgNotArray)
		}

		var body any
		dec := json.NewDecoder(bytes.NewReader(c.Body()))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return errBadRequest(c, msgNotArray)
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			return errBadRequest(c, msgNotArray)
		}

		items, ok := body.([]any)
		if !ok {
			return errBadRequest(c, msgNotArray)
		}

		coords := make([]domain.Coordinate, 0, len(items))
		for _, item := range items {
			coord, ok := deps.Rule.Parse(item)
			if !ok {
				return errBadRequest(c, msg)
			}
			coords = append(coords, coord)
		}

		return c.JSON(deps.Classifier.ClassifyBatch(c.UserContext(), coords))
	}
}
