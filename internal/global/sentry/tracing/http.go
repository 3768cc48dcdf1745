package tracing

import (
	"childcare-center-backend/config"
	"net/url"

	"github.com/getsentry/sentry-go"
	"github.com/go-resty/resty/v2"
)

// SetupRestyTracing 为 Resty 客户端配置 Sentry 追踪中间件
// 应在 httpclient.Init() 中调用
func SetupRestyTracing(client *resty.Client) {
	if !config.Get().Sentry.Tracing.TraceHTTPCalls {
		return
	}

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		ctx := req.Context()
		if ctx == nil {
			return nil
		}

		parentSpan := sentry.SpanFromContext(ctx)
		if parentSpan == nil {
			return nil
		}

		span := parentSpan.StartChild("http.client")
		span.Description = req.Method + " " + sanitizeURL(req.URL)
		span.SetData("http.request.method", req.Method)
		span.SetData("url.full", sanitizeURL(req.URL))

		// sentry-trace 头支持分布式追踪
		req.SetHeader("sentry-trace", span.ToSentryTrace())
		if baggage := span.ToBaggage(); baggage != "" {
			req.SetHeader("baggage", baggage)
		}

		req.SetContext(span.Context())
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		ctx := resp.Request.Context()
		if ctx == nil {
			return nil
		}

		span := sentry.SpanFromContext(ctx)
		if span == nil {
			return nil
		}

		span.SetData("http.response.status_code", resp.StatusCode())
		if resp.StatusCode() >= 400 {
			span.Status = sentry.HTTPtoSpanStatus(resp.StatusCode())
		} else {
			span.Status = sentry.SpanStatusOK
		}
		span.Finish()
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		if req == nil || req.Context() == nil {
			return
		}
		span := sentry.SpanFromContext(req.Context())
		if span == nil {
			return
		}
		span.Status = sentry.SpanStatusInternalError
		span.SetData("http.error", err.Error())
		span.Finish()
	})
}

// sanitizeURL 清理 URL，移除查询参数等敏感信息
func sanitizeURL(rawURL string) string {
	if rawURL == "" {
		return "unknown"
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}

	result := ""
	if parsed.Scheme != "" {
		result = parsed.Scheme + "://"
	}
	if parsed.Host != "" {
		result += parsed.Host
	}
	if parsed.Path != "" {
		result += parsed.Path
	}
	if result == "" {
		return "unknown"
	}
	return result
}
