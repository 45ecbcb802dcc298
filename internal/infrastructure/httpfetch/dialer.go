package httpfetch

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"github.com/na2na-p/atelier/internal/usecase"
)

const (
	dialTimeout   = 10 * time.Second
	dialKeepAlive = 30 * time.Second
)

// IsGlobalUnicastとIsPrivateで判定できない予約済みの範囲
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("240.0.0.0/4"),
}

// NewClient は上流取得用のhttp.Clientを返す。
// allowPrivateがfalseの場合、名前解決後の接続先が公開アドレスでなければ接続しない。リダイレクト先も同様。
func NewClient(allowPrivate bool) *http.Client {
	dialer := &net.Dialer{
		Timeout:   dialTimeout,
		KeepAlive: dialKeepAlive,
	}
	if !allowPrivate {
		dialer.Control = denyNonPublicAddress
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	// 環境変数のプロキシを経由すると接続先の検査が効かない
	transport.Proxy = nil

	return &http.Client{Transport: transport}
}

func denyNonPublicAddress(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrUpstreamAddressForbidden, address)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", usecase.ErrUpstreamAddressForbidden, host)
	}
	if !isPublicAddr(addr) {
		return fmt.Errorf("%w: %s", usecase.ErrUpstreamAddressForbidden, addr)
	}
	return nil
}

func isPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}
	for _, prefix := range reservedPrefixes {
		if prefix.Contains(addr) {
			return false
		}
	}
	return true
}
