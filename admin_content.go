package portfolio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// crudResource is the route set of one list/add/edit/delete admin section.
type crudResource struct {
	name     string
	list     echo.HandlerFunc
	addPage  echo.HandlerFunc
	add      echo.HandlerFunc
	editPage echo.HandlerFunc
	edit     echo.HandlerFunc
	remove   echo.HandlerFunc
}

func (r crudResource) register(g *echo.Group) {
	base := "/" + r.name
	g.GET(base, r.list)
	g.GET(base+"/add", r.addPage)
	g.POST(base+"/add", r.add)
	g.GET(base+"/edit/:id", r.editPage)
	g.POST(base+"/edit/:id", r.edit)
	g.POST(base+"/delete/:id", r.remove)
}

func (a *App) crudResources() []crudResource {
	return []crudResource{
		{"projects", a.handleProjectList, a.handleProjectAddPage, a.handleProjectAdd, a.handleProjectEditPage, a.handleProjectEdit, a.handleProjectDelete},
		{"blogs", a.handleBlogList, a.handleBlogAddPage, a.handleBlogAdd, a.handleBlogEditPage, a.handleBlogEdit, a.handleBlogDelete},
		{"services", a.handleServiceList, a.handleServiceAddPage, a.handleServiceAdd, a.handleServiceEditPage, a.handleServiceEdit, a.handleServiceDelete},
		{"education", a.handleEducationList, a.handleEducationAddPage, a.handleEducationAdd, a.handleEducationEditPage, a.handleEducationEdit, a.handleEducationDelete},
		{"experience", a.handleExperienceList, a.handleExperienceAddPage, a.handleExperienceAdd, a.handleExperienceEditPage, a.handleExperienceEdit, a.handleExperienceDelete},
	}
}

// formPage is shared by the add and edit pages.
type formPage struct {
	page
	Action string
	IsEdit bool
}

func (a *App) newFormPage(c echo.Context, title, action string, id int64) formPage {
	fp := formPage{page: a.adminPage(c, title), Action: action + "/add"}
	if id > 0 {
		fp.Action = action + "/edit/" + strconv.FormatInt(id, 10)
		fp.IsEdit = true
	}
	return fp
}

// editID parses the :id of an edit route. A malformed id is treated like an
// unknown one.
func editID(c echo.Context) int64 {
	id, err := paramID(c)
	if err != nil || id <= 0 {
		return -1
	}
	return id
}

// Projects

type projectListPage struct {
	page
	Projects []Project
}

type projectFormPage struct {
	formPage
	Project Project
}

func (a *App) handleProjectList(c echo.Context) error {
	projects, err := a.Store.Projects()
	if err != nil {
		return err
	}
	return a.render(c, "admin/projects.html", projectListPage{page: a.adminPage(c, "Projects"), Projects: projects})
}

func (a *App) handleProjectAddPage(c echo.Context) error {
	return a.render(c, "admin/project_form.html", projectFormPage{formPage: a.newFormPage(c, "New project", "/admin/projects", 0)})
}

func (a *App) handleProjectAdd(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/projects")
	}
	pf := bindProject(form)
	p := pf.Project
	p.ImageURL = a.uploadURL(pf.Image, "/images/", p.ImageURL)
	_, err = a.Store.AddProject(p)
	return a.afterWrite(c, err, "save the project", "/admin/projects")
}

func (a *App) handleProjectEditPage(c echo.Context) error {
	id := editID(c)
	p, err := a.Store.ProjectByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Project not found")
		}
		return err
	}
	return a.render(c, "admin/project_form.html", projectFormPage{
		formPage: a.newFormPage(c, "Edit project", "/admin/projects", id),
		Project:  p,
	})
}

func (a *App) handleProjectEdit(c echo.Context) error {
	id := editID(c)
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/projects")
	}
	pf := bindProject(form)
	p := pf.Project
	p.ImageURL = a.uploadURL(pf.Image, "/images/", p.ImageURL)
	return a.afterWrite(c, a.Store.UpdateProject(id, p), "update the project", "/admin/projects")
}

func (a *App) handleProjectDelete(c echo.Context) error {
	return a.afterWrite(c, a.Store.DeleteProject(editID(c)), "delete the project", "/admin/projects")
}

// Blogs

type blogListPage struct {
	page
	Blogs []Blog
}

type blogFormPage struct {
	formPage
	Blog Blog
}

func (a *App) handleBlogList(c echo.Context) error {
	blogs, err := a.Store.Blogs()
	if err != nil {
		return err
	}
	return a.render(c, "admin/blogs.html", blogListPage{page: a.adminPage(c, "Blogs"), Blogs: blogs})
}

func (a *App) handleBlogAddPage(c echo.Context) error {
	return a.render(c, "admin/blog_form.html", blogFormPage{formPage: a.newFormPage(c, "New post", "/admin/blogs", 0)})
}

func (a *App) handleBlogAdd(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/blogs")
	}
	bf := bindBlog(form)
	b := bf.Blog
	b.ImageURL = a.uploadURL(bf.Image, "/images/", b.ImageURL)
	_, err = a.Store.AddBlog(b)
	return a.afterWrite(c, err, "save the post", "/admin/blogs")
}

func (a *App) handleBlogEditPage(c echo.Context) error {
	id := editID(c)
	b, err := a.Store.BlogByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Blog post not found")
		}
		return err
	}
	return a.render(c, "admin/blog_form.html", blogFormPage{
		formPage: a.newFormPage(c, "Edit post", "/admin/blogs", id),
		Blog:     b,
	})
}

func (a *App) handleBlogEdit(c echo.Context) error {
	id := editID(c)
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/blogs")
	}
	bf := bindBlog(form)
	b := bf.Blog
	b.ImageURL = a.uploadURL(bf.Image, "/images/", b.ImageURL)
	return a.afterWrite(c, a.Store.UpdateBlog(id, b), "update the post", "/admin/blogs")
}

func (a *App) handleBlogDelete(c echo.Context) error {
	return a.afterWrite(c, a.Store.DeleteBlog(editID(c)), "delete the post", "/admin/blogs")
}

// Services

type serviceListPage struct {
	page
	Services []Service
}

type serviceFormPage struct {
	formPage
	Service Service
}

func (a *App) handleServiceList(c echo.Context) error {
	services, err := a.Store.Services()
	if err != nil {
		return err
	}
	return a.render(c, "admin/services.html", serviceListPage{page: a.adminPage(c, "Services"), Services: services})
}

func (a *App) handleServiceAddPage(c echo.Context) error {
	return a.render(c, "admin/service_form.html", serviceFormPage{formPage: a.newFormPage(c, "New service", "/admin/services", 0)})
}

func (a *App) handleServiceAdd(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/services")
	}
	sf := bindService(form)
	sv := sf.Service
	sv.ImageURL = a.uploadURL(sf.Image, "/images/", sv.ImageURL)
	_, err = a.Store.AddService(sv)
	return a.afterWrite(c, err, "save the service", "/admin/services")
}

// Unknown services go back to the list rather than a 404.
func (a *App) handleServiceEditPage(c echo.Context) error {
	id := editID(c)
	sv, err := a.Store.ServiceByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Redirect(http.StatusSeeOther, "/admin/services")
		}
		return err
	}
	return a.render(c, "admin/service_form.html", serviceFormPage{
		formPage: a.newFormPage(c, "Edit service", "/admin/services", id),
		Service:  sv,
	})
}

func (a *App) handleServiceEdit(c echo.Context) error {
	id := editID(c)
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/services")
	}
	sf := bindService(form)
	sv := sf.Service
	sv.ImageURL = a.uploadURL(sf.Image, "/images/", sv.ImageURL)
	return a.afterWrite(c, a.Store.UpdateService(id, sv), "update the service", "/admin/services")
}

func (a *App) handleServiceDelete(c echo.Context) error {
	return a.afterWrite(c, a.Store.DeleteService(editID(c)), "delete the service", "/admin/services")
}

// Education

type educationListPage struct {
	page
	Education []Education
}

type educationFormPage struct {
	formPage
	Education Education
}

func (a *App) handleEducationList(c echo.Context) error {
	items, err := a.Store.Education()
	if err != nil {
		return err
	}
	return a.render(c, "admin/education.html", educationListPage{page: a.adminPage(c, "Education"), Education: items})
}

func (a *App) handleEducationAddPage(c echo.Context) error {
	return a.render(c, "admin/education_form.html", educationFormPage{formPage: a.newFormPage(c, "New education", "/admin/education", 0)})
}

func (a *App) handleEducationAdd(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/education")
	}
	_, err = a.Store.AddEducation(bindEducation(form))
	return a.afterWrite(c, err, "save the education entry", "/admin/education")
}

func (a *App) handleEducationEditPage(c echo.Context) error {
	id := editID(c)
	ed, err := a.Store.EducationByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Education not found")
		}
		return err
	}
	return a.render(c, "admin/education_form.html", educationFormPage{
		formPage:  a.newFormPage(c, "Edit education", "/admin/education", id),
		Education: ed,
	})
}

func (a *App) handleEducationEdit(c echo.Context) error {
	id := editID(c)
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/education")
	}
	return a.afterWrite(c, a.Store.UpdateEducation(id, bindEducation(form)), "update the education entry", "/admin/education")
}

func (a *App) handleEducationDelete(c echo.Context) error {
	return a.afterWrite(c, a.Store.DeleteEducation(editID(c)), "delete the education entry", "/admin/education")
}

// Experience

type experienceListPage struct {
	page
	Experience []Experience
}

type experienceFormPage struct {
	formPage
	Experience Experience
}

func (a *App) handleExperienceList(c echo.Context) error {
	items, err := a.Store.Experience()
	if err != nil {
		return err
	}
	return a.render(c, "admin/experience.html", experienceListPage{page: a.adminPage(c, "Experience"), Experience: items})
}

func (a *App) handleExperienceAddPage(c echo.Context) error {
	return a.render(c, "admin/experience_form.html", experienceFormPage{formPage: a.newFormPage(c, "New position", "/admin/experience", 0)})
}

func (a *App) handleExperienceAdd(c echo.Context) error {
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/experience")
	}
	_, err = a.Store.AddExperience(bindExperience(form))
	return a.afterWrite(c, err, "save the position", "/admin/experience")
}

func (a *App) handleExperienceEditPage(c echo.Context) error {
	id := editID(c)
	ex, err := a.Store.ExperienceByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.String(http.StatusNotFound, "Experience not found")
		}
		return err
	}
	return a.render(c, "admin/experience_form.html", experienceFormPage{
		formPage:   a.newFormPage(c, "Edit position", "/admin/experience", id),
		Experience: ex,
	})
}

func (a *App) handleExperienceEdit(c echo.Context) error {
	id := editID(c)
	form, err := a.readForm(c)
	if err != nil {
		return a.formError(c, err, "/admin/experience")
	}
	return a.afterWrite(c, a.Store.UpdateExperience(id, bindExperience(form)), "update the position", "/admin/experience")
}

func (a *App) handleExperienceDelete(c echo.Context) error {
	return a.afterWrite(c, a.Store.DeleteExperience(editID(c)), "delete the position", "/admin/experience")
}
