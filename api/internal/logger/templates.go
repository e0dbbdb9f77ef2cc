package logger

import "strconv"

func (l Logger) TemplPaymentErr(message string, errorId string, uniquecode string, amount int64, uri string, apiKey string, ip string) string {
	l.Error(message, LS_PAYMENTS, true, "uniquecode", uniquecode, "amount", strconv.FormatInt(amount, 10), "uri", uri, "error_id", errorId, "ip", ip, "api_key", apiKey)
	return errorId
}

func (l Logger) TemplPaymentInfo(message string, errorId string, uniquecode string, amount int64, uri string, apiKey string, ip string) string {
	l.Info(message, LS_PAYMENTS, true, "uniquecode", uniquecode, "amount", strconv.FormatInt(amount, 10), "uri", uri, "error_id", errorId, "ip", ip, "api_key", apiKey)
	return errorId
}

func (l Logger) TemplMerchantErr(message string, errorId string, apiKey string, uri string, ip string) string {
	l.Error(message, LS_MERCHANTS, true, "api_key", apiKey, "uri", uri, "error_id", errorId, "ip", ip)
	return errorId
}

func (l Logger) TemplUpstreamErr(message, feedUrl string, err error) {
	l.Error(message, LS_UPSTREAM, true, "feed_url", feedUrl, "error", err.Error())
}

func (l Logger) TemplUpstreamInfo(message, feedUrl string) {
	l.Info(message, LS_UPSTREAM, true, "feed_url", feedUrl, "error", NA)
}

// use only for fatal errors
func (l Logger) TemplHTTPError(message string, ipv4 string, err error) {
	l.Fatal(message, LS_FATAL, true, "error", err.Error(), "ipv4", ipv4)
}
