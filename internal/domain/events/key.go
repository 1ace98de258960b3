package events

import "strings"

const keySeparator = ':'

// Flat codifica la key como string: community escapada + ":" + name.
// En el community_id "\" se escribe "\\" y ":" se escribe "\:"; el name va tal cual,
// así que el primer ":" sin escapar siempre es el separador.
func (k Key) Flat() string {
	return CommunityPrefix(k.CommunityID) + k.Name
}

// CommunityPrefix devuelve el prefijo que comparten todas las keys planas de una comunidad.
// Una key pertenece a la comunidad sii empieza exactamente con este prefijo.
func CommunityPrefix(communityID string) string {
	var b strings.Builder
	b.Grow(len(communityID) + 1)
	for i := 0; i < len(communityID); i++ {
		c := communityID[i]
		if c == '\\' || c == keySeparator {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(keySeparator)
	return b.String()
}

// ParseFlat reconstruye la Key desde su forma plana.
func ParseFlat(flat string) (Key, error) {
	var community strings.Builder
	for i := 0; i < len(flat); i++ {
		c := flat[i]
		switch c {
		case '\\':
			if i+1 >= len(flat) {
				return Key{}, ErrMalformedKey
			}
			next := flat[i+1]
			if next != '\\' && next != keySeparator {
				return Key{}, ErrMalformedKey
			}
			community.WriteByte(next)
			i++
		case keySeparator:
			return Key{CommunityID: community.String(), Name: flat[i+1:]}, nil
		default:
			community.WriteByte(c)
		}
	}
	return Key{}, ErrMalformedKey
}
