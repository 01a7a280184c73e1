// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import "strings"

// FilterType is just an alias for byte.
type FilterType byte

const (
	// FilterTypeWhitelist represents a whitelist filter.
	FilterTypeWhitelist FilterType = 1
	// FilterTypeBlacklist represents a blacklist filter.
	FilterTypeBlacklist FilterType = 2
)

// FilterKV is the contract for a key-value filter.
type FilterKV interface {
	// IsAllowed returns true if a key-value is eligible to be returned
	// in the properties map.
	IsAllowed(key, value string) bool

	// Type returns filter's type (FilterTypeWhitelist / FilterTypeBlacklist).
	Type() FilterType
}

// The FilterKVWhitelistFunc type is an adapter to allow the use of
// ordinary functions as FilterKV of "whitelist" type.
// fn should return true if the KV is whitelisted.
//
// Example:
//
//	xprops.FilterKVWhitelistFunc(xprops.FilterKeyWithPrefix("db."))
type FilterKVWhitelistFunc func(key, value string) bool

// IsAllowed returns true if a key-value is whitelisted.
func (filter FilterKVWhitelistFunc) IsAllowed(key, value string) bool {
	return filter(key, value)
}

// Type returns filter's type (FilterTypeWhitelist).
func (filter FilterKVWhitelistFunc) Type() FilterType {
	return FilterTypeWhitelist
}

// The FilterKVBlacklistFunc type is an adapter to allow the use of
// ordinary functions as FilterKV of "blacklist" type.
// fn should return true if the KV is blacklisted.
//
// Example:
//
//	xprops.FilterKVBlacklistFunc(xprops.FilterEmptyValue)
type FilterKVBlacklistFunc func(key, value string) bool

// IsAllowed returns false if a key-value is blacklisted.
func (filter FilterKVBlacklistFunc) IsAllowed(key, value string) bool {
	return !filter(key, value)
}

// Type returns filter's type (FilterTypeBlacklist).
func (filter FilterKVBlacklistFunc) Type() FilterType {
	return FilterTypeBlacklist
}

// FilterKVLoader decorates another loader to whitelist/blacklist key-values.
// A new Properties map is returned, the decorated loader's one is left untouched
// (it may be a cached one, like [PropertyMapLoader]'s).
//
// A blacklist filter has more weight than a whitelist filter, as if a blacklist denies a KV
// and a whitelist allows it, that KV will not be returned.
//
// If there are only whitelist filters, a KV will be returned
// if at least one filter allows it.
//
// If there are only blacklist filters, a KV will be returned
// if no filter denies it.
func FilterKVLoader(loader Loader, filters ...FilterKV) Loader {
	// make 2 buckets of filters.
	var (
		blacklistFilters = make([]FilterKV, 0, len(filters))
		whitelistFilters = make([]FilterKV, 0, len(filters))
	)
	for _, filter := range filters {
		switch filter.Type() {
		case FilterTypeWhitelist:
			whitelistFilters = append(whitelistFilters, filter)
		case FilterTypeBlacklist:
			blacklistFilters = append(blacklistFilters, filter)
		}
	}

	return LoaderFunc(func() (Properties, error) {
		props, err := loader.Load()
		if err != nil {
			return props, err
		}

		filtered := make(Properties, len(props))
	KvLoop:
		for key, value := range props {
			for _, blFilter := range blacklistFilters {
				if !blFilter.IsAllowed(key, value) {
					continue KvLoop
				}
			}

			if len(whitelistFilters) > 0 {
				isAllowed := false
				for _, wlFilter := range whitelistFilters {
					if wlFilter.IsAllowed(key, value) {
						isAllowed = true

						break
					}
				}
				if !isAllowed {
					continue
				}
			}

			filtered[key] = value
		}

		return filtered, nil
	})
}

// FilterKeyWithPrefix returns true if a key has given prefix.
func FilterKeyWithPrefix(prefix string) func(key, _ string) bool {
	return func(key, _ string) bool {
		return strings.HasPrefix(key, prefix)
	}
}

// FilterKeyWithSuffix returns true if a key has given suffix.
func FilterKeyWithSuffix(suffix string) func(key, _ string) bool {
	return func(key, _ string) bool {
		return strings.HasSuffix(key, suffix)
	}
}

// FilterExactKeys returns true if a key is present in the provided list.
func FilterExactKeys(keys ...string) func(key, _ string) bool {
	return func(key, _ string) bool {
		for _, k := range keys {
			if key == k {
				return true
			}
		}

		return false
	}
}

// FilterEmptyValue returns true if a value is "".
func FilterEmptyValue(_, value string) bool {
	return value == ""
}
