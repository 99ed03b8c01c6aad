package portfolio

import (
	"sort"
)

// AddMessage stores a contact-form submission as unread.
func (s *Store) AddMessage(m Message) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`INSERT INTO messages (name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.Name, m.Email, m.Subject, m.Body, now())
	if err != nil {
		return 0, wrapErr("add message", err)
	}
	return res.LastInsertId()
}

// Messages returns every message, newest first.
func (s *Store) Messages() ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT id, name, email, subject, message, COALESCE(read, 0), created_at
		FROM messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Message
	for rows.Next() {
		var m Message
		var read int
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &read, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Read = read == 1
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) UnreadMessageCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE read = 0`).Scan(&n)
	return n, err
}

func (s *Store) DeleteMessage(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM messages WHERE id = ?`, id)
	return wrapErr("delete message", err)
}

func (s *Store) AdminByUsername(username string) (Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var a Admin
	err := s.db.QueryRow(`SELECT id, username, password_hash, password_changed_at FROM admin WHERE username = ?`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.PasswordChangedAt)
	return a, err
}

// SetAdminPassword replaces the stored hash for username and marks the
// bootstrap credential as rotated.
func (s *Store) SetAdminPassword(username, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`UPDATE admin SET password_hash = ?, password_changed_at = ? WHERE username = ?`,
		hash, now(), username)
	if err != nil {
		return wrapErr("set admin password", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("set admin password", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveFile persists an uploaded blob. CreatedAt is stamped when empty.
func (s *Store) SaveFile(f StoredFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.CreatedAt == "" {
		f.CreatedAt = now()
	}
	_, err := s.db.Exec(`INSERT INTO images (id, filename, content_type, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Filename, f.ContentType, f.Data, f.CreatedAt)
	return wrapErr("save file", err)
}

func (s *Store) File(id string) (StoredFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := StoredFile{ID: id}
	err := s.db.QueryRow(`SELECT filename, content_type, data, created_at FROM images WHERE id = ?`, id).
		Scan(&f.Filename, &f.ContentType, &f.Data, &f.CreatedAt)
	return f, err
}

// EmailSettings returns the singleton settings row, inserting the defaults
// first if it does not exist yet.
func (s *Store) EmailSettings() (EmailSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO email_settings (id, smtp_server, smtp_port, smtp_username, smtp_password, notification_email, enabled)
		VALUES (1, 'smtp.gmail.com', 587, '', '', '', 0)`); err != nil {
		return EmailSettings{}, err
	}
	var es EmailSettings
	var enabled int
	err := s.db.QueryRow(`SELECT smtp_server, smtp_port, smtp_username, smtp_password, notification_email, enabled
		FROM email_settings WHERE id = 1`).
		Scan(&es.SMTPServer, &es.SMTPPort, &es.SMTPUsername, &es.SMTPPassword, &es.NotificationEmail, &enabled)
	es.Enabled = enabled == 1
	return es, err
}

func (s *Store) UpdateEmailSettings(es EmailSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO email_settings (id, smtp_server, smtp_port, smtp_username, smtp_password, notification_email, enabled)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		es.SMTPServer, es.SMTPPort, es.SMTPUsername, es.SMTPPassword, es.NotificationEmail, boolInt(es.Enabled))
	return wrapErr("update email settings", err)
}

// SiteContent returns the whole key/value bag.
func (s *Store) SiteContent() (SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT key, value FROM site_content`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	content := make(SiteContent)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		content[k] = v
	}
	return content, rows.Err()
}

// SiteContentSections returns every item grouped by section, sections and
// keys in alphabetical order.
func (s *Store) SiteContentSections() ([]ContentSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT key, value, section, COALESCE(description, '') FROM site_content ORDER BY section, key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bySection := make(map[string][]SiteContentItem)
	for rows.Next() {
		var it SiteContentItem
		if err := rows.Scan(&it.Key, &it.Value, &it.Section, &it.Description); err != nil {
			return nil, err
		}
		bySection[it.Section] = append(bySection[it.Section], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sections := make([]ContentSection, 0, len(bySection))
	for name, items := range bySection {
		sections = append(sections, ContentSection{Name: name, Items: items})
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Name < sections[j].Name })
	return sections, nil
}

// UpdateSiteContent writes values for keys that already exist. Unknown keys
// are ignored; the key set is fixed at first boot.
func (s *Store) UpdateSiteContent(updates map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range updates {
		if _, err := s.db.Exec(`UPDATE site_content SET value = ? WHERE key = ?`, v, k); err != nil {
			return wrapErr("update site content", err)
		}
	}
	return nil
}
