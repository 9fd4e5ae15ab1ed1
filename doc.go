// Package relay dispatches structured questions to LLM providers and
// orchestrates tool calls until a final answer is produced.
//
// The library routes a [Envelope] to the right provider gateway based on
// the requested model, lets the model invoke host-defined tools and feeds
// their results back, and assembles relevant prior conversation turns
// (by recency or embedding similarity) into the request.
//
// # Core Types
//
//   - [Envelope]: the unit of work sent to a provider: ordered
//     role-tagged turns plus request metadata
//   - [RawCompletion]: what a gateway returns: finish reason, answer or
//     requested tool call, and token usage
//   - [Result]: the final (or degraded) answer handed to persistence
//   - [Gateway]: the per-provider capability contract
//
// # Entry Point
//
// Callers use [github.com/spetersoncode/relay/ask.Orchestrator] as the
// sole public entry point:
//
//	registry := model.DefaultRegistry()
//	svc := dispatch.New(registry,
//	    dispatch.WithGateway(relay.ProviderDeepSeek, deepseek.New(apiKey)),
//	)
//	orc := ask.New(svc, repo, registry)
//
//	id, err := orc.Execute(ctx, []string{"What's my balance?"}, "user-1", "deepseek-chat",
//	    ask.WithTools(tools),
//	    ask.WithTemperature(0.1),
//	)
//
// Provider failures never escape Execute: a failed dispatch yields a
// degraded, clearly-marked result whose identifier is still returned.
//
// # Tool Calling
//
// Tools are registered with a [github.com/spetersoncode/relay/tool.Registry]
// and described to the model with a JSON schema generated from a typed
// handler:
//
//	reg := tool.NewRegistry().Add(
//	    tool.Func("get_balance", "Look up the account balance",
//	        func(ctx context.Context, args BalanceArgs) (string, error) {
//	            return lookupBalance(args.Account)
//	        }),
//	)
//
// # Context Assembly
//
// The [github.com/spetersoncode/relay/history] package selects prior
// conversation turns for a new request, either the most recent ones or
// the ones closest to an anchor embedding, and renders them into the
// context block injected before the user's message.
package relay
