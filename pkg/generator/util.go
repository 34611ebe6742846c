package generator

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// seedFromID はIDから決定論的なシード値を生成します。
// プレースホルダーの星配置を惑星ごとに固定しつつ、テストで再現可能にするための措置です。
func seedFromID(id string) int64 {
	hash := sha256.Sum256([]byte(id))
	seed := int32(binary.BigEndian.Uint32(hash[:4]))
	if seed < 0 {
		seed = -seed
	}
	return int64(seed)
}

// wrapText は文字列をルーン単位で width 文字ごとに折り返します。
// 空白があればそこで区切り、長い連続文字列は強制的に分割します。
func wrapText(s string, width int) []string {
	if width <= 0 || s == "" {
		return nil
	}

	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		for len(runes) > width {
			// 1語が折り返し幅を超える場合は強制分割
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		if len(line) > 0 && len(line)+1+len(runes) > width {
			lines = append(lines, string(line))
			line = nil
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, runes...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// isSafeURL は、SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func isSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolvedIPs
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
