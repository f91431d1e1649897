package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to the classifier.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	classificationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Classification",
		Fields: graphql.Fields{
			"water": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"lat":   &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"lon":   &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	landType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Land",
		Fields: graphql.Fields{
			"source":   &graphql.Field{Type: graphql.String},
			"polygons": &graphql.Field{Type: graphql.Int},
			"vertices": &graphql.Field{Type: graphql.Int},
		},
	})

	coordinateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CoordinateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"lat": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"lon": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	queryErr := errors.New(queryErrorMessage(deps.Rule))
	batchErr := errors.New(bodyErrorMessage(deps.Rule))

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"isOnWater": &graphql.Field{
				Type:        classificationType,
				Description: "Classify a single coordinate",
				Args: graphql.FieldConfigArgument{
					"lat": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lon": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					coord, ok := deps.Rule.ParsePair(p.Args["lat"], p.Args["lon"])
					if !ok {
						return nil, queryErr
					}
					return deps.Classifier.Classify(p.Context, coord), nil
				},
			},
			"isOnWaterBatch": &graphql.Field{
				Type:        graphql.NewList(graphql.NewNonNull(classificationType)),
				Description: "Classify an ordered batch of coordinates (all-or-nothing)",
				Args: graphql.FieldConfigArgument{
					"points": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(coordinateInput))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					points, _ := p.Args["points"].([]interface{})
					coords := make([]domain.Coordinate, 0, len(points))
					for _, pt := range points {
						coord, ok := deps.Rule.Parse(pt)
						if !ok {
							return nil, batchErr
						}
						coords = append(coords, coord)
					}
					return deps.Classifier.ClassifyBatch(p.Context, coords), nil
				},
			},
			"land": &graphql.Field{
				Type:        landType,
				Description: "The loaded land dataset",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Classifier.LandStats(), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
