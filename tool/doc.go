// Package tool manages tool descriptors and their handlers.
//
// A [Registry] binds each tool name to a handler and executes calls the
// model requests. Handler failures are captured into the tool result and
// fed back to the model rather than aborting the request; only a call to
// an unregistered tool is a hard error.
//
// Register typed handlers with automatic schema generation:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Get current weather",
//	        func(ctx context.Context, args WeatherArgs) (string, error) {
//	            return getWeather(args.Location)
//	        }),
//	)
package tool
