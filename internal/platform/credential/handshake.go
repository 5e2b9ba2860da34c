package credential

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeAccessToken arma el buffer que espera la extensión de handshake:
// uint32 little-endian con el largo en bytes, seguido del token en UTF-16LE.
func EncodeAccessToken(token string) ([]byte, error) {
	body, err := utf16le.NewEncoder().Bytes([]byte(token))
	if err != nil {
		return nil, fmt.Errorf("encode token utf-16le: %w", err)
	}
	buf := make([]byte, 4+len(body))
	binary.LittleEndian.PutUint32(buf[:4], uint32(len(body)))
	copy(buf[4:], body)
	return buf, nil
}

// DecodeAccessToken es la inversa de EncodeAccessToken. Los drivers que
// reciben el token como string lo recuperan de aquí.
func DecodeAccessToken(buf []byte) (string, error) {
	if len(buf) < 4 {
		return "", errors.New("handshake token: buffer shorter than length prefix")
	}
	n := binary.LittleEndian.Uint32(buf[:4])
	body := buf[4:]
	if int(n) != len(body) {
		return "", fmt.Errorf("handshake token: prefix says %d bytes, got %d", n, len(body))
	}
	if n%2 != 0 {
		return "", fmt.Errorf("handshake token: odd utf-16 length %d", n)
	}
	s, err := utf16le.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decode token utf-16le: %w", err)
	}
	return string(s), nil
}
