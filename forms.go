package portfolio

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Upload is a file part taken from a multipart body.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// partForm holds the decoded text fields and file parts of one request.
type partForm struct {
	values url.Values
	files  []*Upload
}

var errUploadTooLarge = errors.New("upload exceeds the size limit")

// readForm decodes a multipart or url-encoded body. A multipart part is a
// file when it has a filename and a non-empty payload; every other part is
// a text field.
func (a *App) readForm(c echo.Context) (*partForm, error) {
	f := &partForm{values: url.Values{}}
	req := c.Request()
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		params, err := c.FormParams()
		if err != nil {
			return nil, err
		}
		f.values = params
		return f, nil
	}

	// The CSRF check may already have parsed the body through FormValue.
	if req.MultipartForm != nil {
		return f, f.fromParsed(req.MultipartForm)
	}

	mr, err := req.MultipartReader()
	if err != nil {
		return nil, err
	}
	limit := a.Config.MaxUploadSize
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(io.LimitReader(part, limit+1))
		part.Close()
		if err != nil {
			return nil, err
		}
		if int64(len(data)) > limit {
			return nil, fmt.Errorf("%s: %w", part.FormName(), errUploadTooLarge)
		}
		f.add(part.FormName(), part.FileName(), part.Header.Get(echo.HeaderContentType), data)
	}
	return f, nil
}

func (f *partForm) fromParsed(form *multipart.Form) error {
	for k, vs := range form.Value {
		f.values[k] = append(f.values[k], vs...)
	}
	for field, headers := range form.File {
		for _, h := range headers {
			src, err := h.Open()
			if err != nil {
				return err
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				return err
			}
			f.add(field, h.Filename, h.Header.Get(echo.HeaderContentType), data)
		}
	}
	return nil
}

func (f *partForm) add(field, filename, contentType string, data []byte) {
	if filename != "" && len(data) > 0 {
		f.files = append(f.files, &Upload{
			Field:       field,
			Filename:    filename,
			ContentType: contentType,
			Data:        data,
		})
		return
	}
	f.values.Add(field, string(data))
}

// Value returns the first value of a text field, trimmed.
func (f *partForm) Value(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

// Raw returns the first value of a text field as sent.
func (f *partForm) Raw(key string) string {
	return f.values.Get(key)
}

// Checked reports whether a checkbox field was submitted.
func (f *partForm) Checked(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *partForm) Int(key string) int {
	return f.IntOr(key, 0)
}

// IntOr returns the field parsed as an integer, or def when it is missing
// or not a number.
func (f *partForm) IntOr(key string, def int) int {
	n, err := strconv.Atoi(f.Value(key))
	if err != nil {
		return def
	}
	return n
}

// File returns the upload sent under field, or nil.
func (f *partForm) File(field string) *Upload {
	for _, u := range f.files {
		if u.Field == field {
			return u
		}
	}
	return nil
}

// FirstFile returns the upload sent under field, or failing that the first
// upload under any name.
func (f *partForm) FirstFile(field string) *Upload {
	if u := f.File(field); u != nil {
		return u
	}
	if len(f.files) > 0 {
		return f.files[0]
	}
	return nil
}

// Keys lists the text fields present in the form.
func (f *partForm) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	return keys
}

// ProfileForm is the admin profile editor.
type ProfileForm struct {
	Profile
	Avatar *Upload // avatar_file, stored under /images/
	Resume *Upload // resume_file, stored under /files/
}

func bindProfile(f *partForm) ProfileForm {
	return ProfileForm{
		Profile: Profile{
			Name:        f.Value("name"),
			Title:       f.Value("title"),
			Bio:         f.Raw("bio"),
			Email:       f.Value("email"),
			Phone:       f.Value("phone"),
			Location:    f.Value("location"),
			GithubURL:   f.Value("github_url"),
			LinkedinURL: f.Value("linkedin_url"),
			TwitterURL:  f.Value("twitter_url"),
			AvatarURL:   f.Value("avatar_url"),
			ResumeURL:   f.Value("resume_url"),
		},
		Avatar: f.File("avatar_file"),
		Resume: f.File("resume_file"),
	}
}

// defaultProficiency applies when the skill form has no usable proficiency.
const defaultProficiency = 80

type SkillForm struct {
	Skill
	Icon *Upload // icon_file
}

func bindSkill(f *partForm) SkillForm {
	return SkillForm{
		Skill: Skill{
			Name:        f.Value("name"),
			Category:    f.Value("category"),
			Proficiency: f.IntOr("proficiency", defaultProficiency),
			Icon:        f.Value("icon"),
			IconURL:     f.Value("icon_url"),
		},
		Icon: f.File("icon_file"),
	}
}

type ProjectForm struct {
	Project
	Image *Upload // image_file or any other file part
}

func bindProject(f *partForm) ProjectForm {
	return ProjectForm{
		Project: Project{
			Title:        f.Value("title"),
			Description:  f.Raw("description"),
			Content:      f.Raw("content"),
			ImageURL:     f.Value("image_url"),
			DemoURL:      f.Value("demo_url"),
			GithubURL:    f.Value("github_url"),
			Technologies: f.Value("technologies"),
			Featured:     f.Checked("featured"),
		},
		Image: f.FirstFile("image_file"),
	}
}

type BlogForm struct {
	Blog
	Image *Upload
}

func bindBlog(f *partForm) BlogForm {
	return BlogForm{
		Blog: Blog{
			Title:     f.Value("title"),
			Excerpt:   f.Raw("excerpt"),
			Content:   f.Raw("content"),
			ImageURL:  f.Value("image_url"),
			Tags:      f.Value("tags"),
			Published: f.Checked("published"),
		},
		Image: f.FirstFile("image_file"),
	}
}

type ServiceForm struct {
	Service
	Image *Upload
}

func bindService(f *partForm) ServiceForm {
	return ServiceForm{
		Service: Service{
			Name:        f.Value("name"),
			Description: f.Raw("description"),
			ImageURL:    f.Value("image_url"),
			Icon:        f.Value("icon"),
			OrderIndex:  f.Int("order_index"),
		},
		Image: f.FirstFile("image_file"),
	}
}

func bindEducation(f *partForm) Education {
	return Education{
		Institution: f.Value("institution"),
		Degree:      f.Value("degree"),
		Field:       f.Value("field"),
		StartDate:   f.Value("start_date"),
		EndDate:     f.Value("end_date"),
		Description: f.Raw("description"),
	}
}

func bindExperience(f *partForm) Experience {
	return Experience{
		Company:     f.Value("company"),
		Position:    f.Value("position"),
		Description: f.Raw("description"),
		StartDate:   f.Value("start_date"),
		EndDate:     f.Value("end_date"),
		Current:     f.Checked("current"),
	}
}

func bindEmailSettings(f *partForm) EmailSettings {
	port := f.Int("smtp_port")
	if port == 0 {
		port = 587
	}
	return EmailSettings{
		SMTPServer:        f.Value("smtp_server"),
		SMTPPort:          port,
		SMTPUsername:      f.Value("smtp_username"),
		SMTPPassword:      f.Raw("smtp_password"),
		NotificationEmail: f.Value("notification_email"),
		Enabled:           f.Checked("enabled"),
	}
}
