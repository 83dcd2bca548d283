// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package emit

// The Key* methods are shortcuts for the common case of emitting an
// object member: each is equivalent to calling String(key) followed by
// the value method of the same name, but spares the caller a chained
// call at every object member.

// KeyString emits key followed by value, as an object member.
func (e *Emitter) KeyString(key, value string) *Emitter {
	return e.String(key).String(value)
}

// KeyBytes emits key followed by value, as an object member.
func (e *Emitter) KeyBytes(key string, value []byte) *Emitter {
	return e.String(key).Bytes(value)
}

// KeyInteger emits key followed by value, as an object member.
func (e *Emitter) KeyInteger(key string, value int64) *Emitter {
	return e.String(key).Integer(value)
}

// KeyNumber emits key followed by value, as an object member.
func (e *Emitter) KeyNumber(key string, value float64) *Emitter {
	return e.String(key).Number(value)
}

// KeyBool emits key followed by value, as an object member.
func (e *Emitter) KeyBool(key string, value bool) *Emitter {
	return e.String(key).Bool(value)
}

// KeyTrue emits key followed by the literal true, as an object member.
func (e *Emitter) KeyTrue(key string) *Emitter { return e.String(key).True() }

// KeyFalse emits key followed by the literal false, as an object member.
func (e *Emitter) KeyFalse(key string) *Emitter { return e.String(key).False() }

// KeyNull emits key followed by the literal null, as an object member.
func (e *Emitter) KeyNull(key string) *Emitter { return e.String(key).Null() }

// KeyLiteral emits key followed by buf written verbatim, as an object
// member.
func (e *Emitter) KeyLiteral(key string, buf []byte) *Emitter {
	return e.String(key).Literal(buf)
}

// KeyObjectOpen emits key followed by '{', opening a nested object as
// an object member.
func (e *Emitter) KeyObjectOpen(key string) *Emitter {
	return e.String(key).ObjectOpen()
}

// KeyArrayOpen emits key followed by '[', opening a nested array as an
// object member.
func (e *Emitter) KeyArrayOpen(key string) *Emitter {
	return e.String(key).ArrayOpen()
}
