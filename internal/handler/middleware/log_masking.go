package middleware

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

// 小文字で比較する。X-Amz-*は署名付きURLがクエリに載った場合のため。
var sensitiveParams = map[string]struct{}{
	"access_token":         {},
	"token":                {},
	"jwt":                  {},
	"x-amz-signature":      {},
	"x-amz-credential":     {},
	"x-amz-security-token": {},
}

const maskValue = "***"

// MaskSensitiveParams はアクセスログ用にURIのトークン系クエリを伏せる。キーは並べ替えられる。
func MaskSensitiveParams(uri string) string {
	if uri == "" {
		return ""
	}

	parsedURL, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	query := parsedURL.Query()
	if len(query) == 0 {
		return uri
	}

	parts := make([]string, 0, len(query))
	for _, key := range slices.Sorted(maps.Keys(query)) {
		escapedKey := url.QueryEscape(key)
		if isSensitiveParam(key) {
			parts = append(parts, escapedKey+"="+maskValue)
			continue
		}
		for _, v := range query[key] {
			parts = append(parts, escapedKey+"="+url.QueryEscape(v))
		}
	}

	parsedURL.RawQuery = strings.Join(parts, "&")
	return parsedURL.String()
}

func isSensitiveParam(key string) bool {
	_, ok := sensitiveParams[strings.ToLower(key)]
	return ok
}
