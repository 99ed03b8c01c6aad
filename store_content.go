package portfolio

import (
	"database/sql"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// Profile returns the singleton profile row.
func (s *Store) Profile() (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var p Profile
	err := s.db.QueryRow(`SELECT name, title, bio, email, COALESCE(phone, ''), COALESCE(location, ''),
		COALESCE(github_url, ''), COALESCE(linkedin_url, ''), COALESCE(twitter_url, ''),
		COALESCE(resume_url, ''), COALESCE(avatar_url, '')
		FROM profile WHERE id = 1`).
		Scan(&p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location,
			&p.GithubURL, &p.LinkedinURL, &p.TwitterURL, &p.ResumeURL, &p.AvatarURL)
	return p, err
}

// UpdateProfile overwrites the singleton profile, creating it if absent.
func (s *Store) UpdateProfile(p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO profile (id, name, title, bio, email, phone, location,
		github_url, linkedin_url, twitter_url, resume_url, avatar_url)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location,
		p.GithubURL, p.LinkedinURL, p.TwitterURL, p.ResumeURL, p.AvatarURL)
	return wrapErr("update profile", err)
}

// Skills returns every skill ordered by category, then name.
func (s *Store) Skills() ([]Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT id, name, category, COALESCE(proficiency, 80), COALESCE(icon, ''), COALESCE(icon_url, '')
		FROM skills ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var skills []Skill
	for rows.Next() {
		var sk Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Proficiency, &sk.Icon, &sk.IconURL); err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

func (s *Store) AddSkill(sk Skill) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`INSERT INTO skills (name, category, proficiency, icon, icon_url) VALUES (?, ?, ?, ?, ?)`,
		sk.Name, sk.Category, sk.Proficiency, sk.Icon, sk.IconURL)
	if err != nil {
		return 0, wrapErr("add skill", err)
	}
	return res.LastInsertId()
}

func (s *Store) DeleteSkill(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM skills WHERE id = ?`, id)
	return wrapErr("delete skill", err)
}

const projectColumns = `id, title, slug, description, COALESCE(content, ''), COALESCE(image_url, ''),
	COALESCE(demo_url, ''), COALESCE(github_url, ''), COALESCE(technologies, ''), COALESCE(featured, 0), created_at`

func scanProject(r rowScanner) (Project, error) {
	var p Project
	var featured int
	err := r.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content, &p.ImageURL,
		&p.DemoURL, &p.GithubURL, &p.Technologies, &featured, &p.CreatedAt)
	p.Featured = featured == 1
	return p, err
}

func (s *Store) queryProjects(query string, args ...any) ([]Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Projects returns every project, newest first.
func (s *Store) Projects() ([]Project, error) {
	return s.queryProjects(`SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC, id DESC`)
}

// FeaturedProjects returns up to four featured projects, newest first.
func (s *Store) FeaturedProjects() ([]Project, error) {
	return s.queryProjects(`SELECT ` + projectColumns + ` FROM projects WHERE featured = 1 ORDER BY created_at DESC, id DESC LIMIT 4`)
}

func (s *Store) ProjectBySlug(slug string) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanProject(s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE slug = ?`, slug))
}

func (s *Store) ProjectByID(id int64) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanProject(s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
}

// AddProject inserts p with a slug derived from its title and returns the new id.
func (s *Store) AddProject(p Project) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`INSERT INTO projects (title, slug, description, content, image_url, demo_url, github_url, technologies, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, Slugify(p.Title), p.Description, p.Content, p.ImageURL, p.DemoURL, p.GithubURL,
		p.Technologies, boolInt(p.Featured), now())
	if err != nil {
		return 0, wrapErr("add project", err)
	}
	return res.LastInsertId()
}

// UpdateProject overwrites project id. The slug follows the new title.
func (s *Store) UpdateProject(id int64, p Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`UPDATE projects SET title = ?, slug = ?, description = ?, content = ?, image_url = ?,
		demo_url = ?, github_url = ?, technologies = ?, featured = ? WHERE id = ?`,
		p.Title, Slugify(p.Title), p.Description, p.Content, p.ImageURL, p.DemoURL, p.GithubURL,
		p.Technologies, boolInt(p.Featured), id)
	return wrapErr("update project", err)
}

func (s *Store) DeleteProject(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	return wrapErr("delete project", err)
}

const blogColumns = `id, title, slug, excerpt, content, COALESCE(image_url, ''), COALESCE(tags, ''),
	COALESCE(published, 0), created_at, updated_at`

func scanBlog(r rowScanner) (Blog, error) {
	var b Blog
	var published int
	err := r.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.ImageURL, &b.Tags,
		&published, &b.CreatedAt, &b.UpdatedAt)
	b.Published = published == 1
	return b, err
}

func (s *Store) queryBlogs(query string, args ...any) ([]Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var blogs []Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// Blogs returns every blog, drafts included, newest first.
func (s *Store) Blogs() ([]Blog, error) {
	return s.queryBlogs(`SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at DESC, id DESC`)
}

// PublishedBlogs returns published blogs, newest first.
func (s *Store) PublishedBlogs() ([]Blog, error) {
	return s.queryBlogs(`SELECT ` + blogColumns + ` FROM blogs WHERE published = 1 ORDER BY created_at DESC, id DESC`)
}

// RecentBlogs returns the newest limit published blogs.
func (s *Store) RecentBlogs(limit int) ([]Blog, error) {
	return s.queryBlogs(`SELECT `+blogColumns+` FROM blogs WHERE published = 1 ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

// BlogBySlug returns a single published blog by slug.
func (s *Store) BlogBySlug(slug string) (Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanBlog(s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE slug = ? AND published = 1`, slug))
}

// BlogByID returns a blog regardless of published status (for admin).
func (s *Store) BlogByID(id int64) (Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanBlog(s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE id = ?`, id))
}

func (s *Store) AddBlog(b Blog) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := now()
	res, err := s.db.Exec(`INSERT INTO blogs (title, slug, excerpt, content, image_url, tags, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Title, Slugify(b.Title), b.Excerpt, b.Content, b.ImageURL, b.Tags, boolInt(b.Published), ts, ts)
	if err != nil {
		return 0, wrapErr("add blog", err)
	}
	return res.LastInsertId()
}

// UpdateBlog overwrites blog id, re-deriving the slug and stamping updated_at.
func (s *Store) UpdateBlog(id int64, b Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`UPDATE blogs SET title = ?, slug = ?, excerpt = ?, content = ?, image_url = ?, tags = ?,
		published = ?, updated_at = ? WHERE id = ?`,
		b.Title, Slugify(b.Title), b.Excerpt, b.Content, b.ImageURL, b.Tags, boolInt(b.Published), now(), id)
	return wrapErr("update blog", err)
}

func (s *Store) DeleteBlog(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM blogs WHERE id = ?`, id)
	return wrapErr("delete blog", err)
}

const experienceColumns = `id, company, position, COALESCE(description, ''), start_date, COALESCE(end_date, ''), COALESCE(current, 0)`

func scanExperience(r rowScanner) (Experience, error) {
	var e Experience
	var current int
	err := r.Scan(&e.ID, &e.Company, &e.Position, &e.Description, &e.StartDate, &e.EndDate, &current)
	e.Current = current == 1
	return e, err
}

// Experience returns work history, most recent start first.
func (s *Store) Experience() ([]Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT ` + experienceColumns + ` FROM experience ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ExperienceByID(id int64) (Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanExperience(s.db.QueryRow(`SELECT `+experienceColumns+` FROM experience WHERE id = ?`, id))
}

func (s *Store) AddExperience(e Experience) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`INSERT INTO experience (company, position, description, start_date, end_date, current)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Company, e.Position, e.Description, e.StartDate, nullIfEmpty(e.EndDate), boolInt(e.Current))
	if err != nil {
		return 0, wrapErr("add experience", err)
	}
	return res.LastInsertId()
}

func (s *Store) UpdateExperience(id int64, e Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`UPDATE experience SET company = ?, position = ?, description = ?, start_date = ?,
		end_date = ?, current = ? WHERE id = ?`,
		e.Company, e.Position, e.Description, e.StartDate, nullIfEmpty(e.EndDate), boolInt(e.Current), id)
	return wrapErr("update experience", err)
}

func (s *Store) DeleteExperience(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM experience WHERE id = ?`, id)
	return wrapErr("delete experience", err)
}

const educationColumns = `id, institution, degree, field, start_date, COALESCE(end_date, ''), COALESCE(description, '')`

func scanEducation(r rowScanner) (Education, error) {
	var e Education
	err := r.Scan(&e.ID, &e.Institution, &e.Degree, &e.Field, &e.StartDate, &e.EndDate, &e.Description)
	return e, err
}

// Education returns education history, most recent start first.
func (s *Store) Education() ([]Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT ` + educationColumns + ` FROM education ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) EducationByID(id int64) (Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanEducation(s.db.QueryRow(`SELECT `+educationColumns+` FROM education WHERE id = ?`, id))
}

func (s *Store) AddEducation(e Education) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`INSERT INTO education (institution, degree, field, start_date, end_date, description)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Institution, e.Degree, e.Field, e.StartDate, nullIfEmpty(e.EndDate), e.Description)
	if err != nil {
		return 0, wrapErr("add education", err)
	}
	return res.LastInsertId()
}

func (s *Store) UpdateEducation(id int64, e Education) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`UPDATE education SET institution = ?, degree = ?, field = ?, start_date = ?, end_date = ?,
		description = ? WHERE id = ?`,
		e.Institution, e.Degree, e.Field, e.StartDate, nullIfEmpty(e.EndDate), e.Description, id)
	return wrapErr("update education", err)
}

func (s *Store) DeleteEducation(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM education WHERE id = ?`, id)
	return wrapErr("delete education", err)
}

const serviceColumns = `id, name, COALESCE(description, ''), COALESCE(image_url, ''), COALESCE(icon, ''), COALESCE(order_index, 0)`

func scanService(r rowScanner) (Service, error) {
	var sv Service
	err := r.Scan(&sv.ID, &sv.Name, &sv.Description, &sv.ImageURL, &sv.Icon, &sv.OrderIndex)
	return sv, err
}

// Services returns services ordered by their order index.
func (s *Store) Services() ([]Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT ` + serviceColumns + ` FROM services ORDER BY order_index, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Service
	for rows.Next() {
		sv, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *Store) ServiceByID(id int64) (Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scanService(s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = ?`, id))
}

func (s *Store) AddService(sv Service) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`INSERT INTO services (name, description, image_url, icon, order_index) VALUES (?, ?, ?, ?, ?)`,
		sv.Name, sv.Description, sv.ImageURL, sv.Icon, sv.OrderIndex)
	if err != nil {
		return 0, wrapErr("add service", err)
	}
	return res.LastInsertId()
}

func (s *Store) UpdateService(id int64, sv Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`UPDATE services SET name = ?, description = ?, image_url = ?, icon = ?, order_index = ? WHERE id = ?`,
		sv.Name, sv.Description, sv.ImageURL, sv.Icon, sv.OrderIndex, id)
	return wrapErr("update service", err)
}

func (s *Store) DeleteService(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM services WHERE id = ?`, id)
	return wrapErr("delete service", err)
}

func nullIfEmpty(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
