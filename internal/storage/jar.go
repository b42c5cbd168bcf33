// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

// =============================================================================
// PERSISTENT COOKIE JAR
// =============================================================================

// Jar is an http.CookieJar that writes every cookie through to the store.
// Matching and expiry are delegated to net/http/cookiejar; the table only
// replays cookies into a fresh jar on the next run. Cookies without an
// expiry are kept until the service replaces or expires them.
type Jar struct {
	inner *cookiejar.Jar
	store *Store

	mu      sync.Mutex
	lastErr error
}

var _ http.CookieJar = (*Jar)(nil)

// CookieJar returns a jar preloaded with every unexpired stored cookie.
func (s *Store) CookieJar() (*Jar, error) {
	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	j := &Jar{inner: inner, store: s}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

// SetCookies implements http.CookieJar.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)

	origin := originOf(u)
	now := time.Now()
	for _, c := range cookies {
		var err error
		if c.MaxAge < 0 || (!c.Expires.IsZero() && !c.Expires.After(now)) {
			err = j.store.deleteCookie(origin, c)
		} else {
			err = j.store.saveCookie(origin, c, expiryOf(c, now))
		}
		if err != nil {
			j.mu.Lock()
			j.lastErr = err
			j.mu.Unlock()
		}
	}
}

// Cookies implements http.CookieJar.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

// Err returns the last write-through failure, if any.
func (j *Jar) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastErr
}

func (j *Jar) load() error {
	rows, err := j.store.loadCookies()
	if err != nil {
		return err
	}
	now := time.Now()
	for _, row := range rows {
		if row.expires > 0 && !time.Unix(row.expires, 0).After(now) {
			continue
		}
		u, err := url.Parse(row.origin)
		if err != nil {
			continue
		}
		c := &http.Cookie{
			Name:     row.name,
			Value:    row.value,
			Domain:   row.domain,
			Path:     row.path,
			Secure:   row.secure,
			HttpOnly: row.httpOnly,
		}
		if row.expires > 0 {
			c.Expires = time.Unix(row.expires, 0)
		}
		j.inner.SetCookies(u, []*http.Cookie{c})
	}
	return j.store.pruneCookies(now)
}

// =============================================================================
// COOKIE TABLE
// =============================================================================

type cookieRow struct {
	origin   string
	name     string
	domain   string
	path     string
	value    string
	expires  int64
	secure   bool
	httpOnly bool
}

func (s *Store) saveCookie(origin string, c *http.Cookie, expires int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO cookies (origin, name, domain, path, value, expires, secure, http_only)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(origin, name, domain, path) DO UPDATE SET
			value = excluded.value, expires = excluded.expires,
			secure = excluded.secure, http_only = excluded.http_only`,
		origin, c.Name, c.Domain, c.Path, c.Value, expires, c.Secure, c.HttpOnly)
	if err != nil {
		return fmt.Errorf("failed to save cookie %q: %w", c.Name, err)
	}
	return nil
}

func (s *Store) deleteCookie(origin string, c *http.Cookie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}
	_, err = db.Exec("DELETE FROM cookies WHERE origin = ? AND name = ? AND domain = ? AND path = ?",
		origin, c.Name, c.Domain, c.Path)
	if err != nil {
		return fmt.Errorf("failed to delete cookie %q: %w", c.Name, err)
	}
	return nil
}

func (s *Store) loadCookies() ([]cookieRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT origin, name, domain, path, value, expires, secure, http_only
		FROM cookies ORDER BY origin, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to load cookies: %w", err)
	}
	defer rows.Close()

	var out []cookieRow
	for rows.Next() {
		var r cookieRow
		if err := rows.Scan(&r.origin, &r.name, &r.domain, &r.path, &r.value, &r.expires, &r.secure, &r.httpOnly); err != nil {
			return nil, fmt.Errorf("failed to scan cookie: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) pruneCookies(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM cookies WHERE expires > 0 AND expires <= ?", now.Unix()); err != nil {
		return fmt.Errorf("failed to prune cookies: %w", err)
	}
	return nil
}

// CookieCount returns the number of stored cookies.
func (s *Store) CookieCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM cookies").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cookies: %w", err)
	}
	return n, nil
}

// originOf is the request URL without query or fragment, so replayed cookies
// get the same default domain and path they were first set with.
func originOf(u *url.URL) string {
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String()
}

func expiryOf(c *http.Cookie, now time.Time) int64 {
	if c.MaxAge > 0 {
		return now.Add(time.Duration(c.MaxAge) * time.Second).Unix()
	}
	if !c.Expires.IsZero() {
		return c.Expires.Unix()
	}
	return 0
}
