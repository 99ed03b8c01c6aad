package portfolio

import (
	"fmt"
)

const (
	DefaultAdminUsername = "admin"
	// DefaultAdminPassword is the bootstrap credential seeded into an empty
	// admin table. It must be rotated after first login.
	DefaultAdminPassword = "admin123"
)

// seed inserts default rows. Site content is inserted per missing key; every
// other table is only filled while empty, so running it again is a no-op.
func (s *Store) seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range defaultSiteContent {
		if _, err := s.db.Exec(`INSERT OR IGNORE INTO site_content (key, value, section, description) VALUES (?, ?, ?, ?)`,
			it.Key, it.Value, it.Section, it.Description); err != nil {
			return fmt.Errorf("site content %s: %w", it.Key, err)
		}
	}

	steps := []struct {
		table string
		fill  func() error
	}{
		{"profile", s.seedProfile},
		{"admin", s.seedAdmin},
		{"skills", s.seedSkills},
		{"projects", s.seedProjects},
		{"blogs", s.seedBlogs},
		{"experience", s.seedExperience},
		{"education", s.seedEducation},
		{"services", s.seedServices},
	}
	for _, st := range steps {
		n, err := s.count(st.table)
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := st.fill(); err != nil {
			return fmt.Errorf("%s: %w", st.table, err)
		}
	}
	return nil
}

func (s *Store) seedProfile() error {
	_, err := s.db.Exec(`INSERT INTO profile (id, name, title, bio, email, phone, location, github_url, linkedin_url, twitter_url, resume_url, avatar_url)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"Md Jobayer Arafat",
		"Full Stack Developer & AI Enthusiast",
		"Passionate software developer with expertise in web development, machine learning, and building innovative solutions. I love creating efficient, scalable applications and exploring cutting-edge technologies.",
		"jobayerarafat@example.com",
		"+880 1234567890",
		"Bangladesh",
		"https://github.com/mdjobayerarafat",
		"https://linkedin.com/in/mdjobayerarafat",
		"https://twitter.com/mdjobayerarafat",
		"/static/resume.pdf",
		"/static/avatar.jpg",
	)
	return err
}

func (s *Store) seedAdmin() error {
	hash, err := HashPassword(s.adminPassword)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO admin (id, username, password_hash) VALUES (1, ?, ?)`, DefaultAdminUsername, hash)
	return err
}

func (s *Store) seedSkills() error {
	skills := []Skill{
		{Name: "Rust", Category: "Backend", Proficiency: 85, Icon: "🦀"},
		{Name: "Python", Category: "Backend", Proficiency: 90, Icon: "🐍"},
		{Name: "JavaScript", Category: "Frontend", Proficiency: 88, Icon: "📜"},
		{Name: "TypeScript", Category: "Frontend", Proficiency: 85, Icon: "💙"},
		{Name: "React", Category: "Frontend", Proficiency: 82, Icon: "⚛️"},
		{Name: "Node.js", Category: "Backend", Proficiency: 85, Icon: "💚"},
		{Name: "PostgreSQL", Category: "Database", Proficiency: 80, Icon: "🐘"},
		{Name: "SQLite", Category: "Database", Proficiency: 85, Icon: "📦"},
		{Name: "Docker", Category: "DevOps", Proficiency: 78, Icon: "🐳"},
		{Name: "Git", Category: "Tools", Proficiency: 90, Icon: "📚"},
		{Name: "Linux", Category: "Tools", Proficiency: 85, Icon: "🐧"},
		{Name: "Machine Learning", Category: "AI/ML", Proficiency: 80, Icon: "🤖"},
	}
	for _, sk := range skills {
		if _, err := s.db.Exec(`INSERT INTO skills (name, category, proficiency, icon) VALUES (?, ?, ?, ?)`,
			sk.Name, sk.Category, sk.Proficiency, sk.Icon); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedProjects() error {
	ts := now()
	projects := []Project{
		{
			Title:        "Portfolio Website",
			Description:  "A modern portfolio website built with Go, Echo and SQLite",
			Content:      "## Overview\n\nThis portfolio website showcases my projects, skills, and blog posts. Built with modern technologies for optimal performance.\n\n## Features\n\n- Responsive dark theme design\n- Admin panel for content management\n- Blog with markdown support\n- Project showcase\n- Contact form",
			ImageURL:     "/static/images/portfolio.jpg",
			DemoURL:      "https://example.com",
			GithubURL:    "https://github.com/mdjobayerarafat/portfolio",
			Technologies: "Go, Echo, SQLite, Tailwind CSS",
			Featured:     true,
		},
		{
			Title:        "AI Chat Application",
			Description:  "An intelligent chat application powered by machine learning",
			Content:      "## Overview\n\nA real-time chat application with AI-powered responses and natural language processing capabilities.\n\n## Features\n\n- Real-time messaging\n- AI-powered responses\n- Natural language understanding\n- Multi-language support",
			ImageURL:     "/static/images/ai-chat.jpg",
			DemoURL:      "https://example.com/chat",
			GithubURL:    "https://github.com/mdjobayerarafat/ai-chat",
			Technologies: "Python, FastAPI, React, TensorFlow, WebSocket",
			Featured:     true,
		},
	}
	slugs := []string{"portfolio-website", "ai-chat-app"}
	for i, p := range projects {
		if _, err := s.db.Exec(`INSERT INTO projects (title, slug, description, content, image_url, demo_url, github_url, technologies, featured, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Title, slugs[i], p.Description, p.Content, p.ImageURL, p.DemoURL, p.GithubURL, p.Technologies,
			boolInt(p.Featured), ts); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedBlogs() error {
	ts := now()
	blogs := []Blog{
		{
			Title:    "Getting Started with Go Web Development",
			Slug:     "getting-started-go-web",
			Excerpt:  "Learn how to build fast and reliable web applications using Go and the Echo framework.",
			Content:  "## Introduction\n\nGo is a simple language with a strong standard library, great tooling, and first-class concurrency. In this post we look at building web applications with it.\n\n## Why Go?\n\n- Fast compilation\n- Static binaries\n- Goroutines and channels\n- Great performance\n\n## Setting Up\n\nCreate a module and add Echo:\n\n```bash\ngo mod init example.com/site\ngo get github.com/labstack/echo/v4\n```\n\n## Your First Handler\n\nRegister a route and return a response...",
			ImageURL: "/static/images/go-blog.jpg",
			Tags:     "Go, Web Development, Echo",
		},
		{
			Title:    "Building Modern UIs with Tailwind CSS",
			Slug:     "modern-ui-tailwind-css",
			Excerpt:  "Discover how Tailwind CSS can speed up your frontend development with utility-first approach.",
			Content:  "## What is Tailwind CSS?\n\nTailwind CSS is a utility-first CSS framework that allows you to build custom designs without leaving your HTML.\n\n## Benefits\n\n- No need to write custom CSS\n- Consistent design system\n- Responsive design made easy\n- Dark mode support\n\n## Getting Started\n\nInstall Tailwind via npm:\n\n```bash\nnpm install -D tailwindcss\nnpx tailwindcss init\n```\n\n## Building Components\n\nCreate beautiful components with utility classes...",
			ImageURL: "/static/images/tailwind-blog.jpg",
			Tags:     "CSS, Tailwind, Frontend",
		},
	}
	for _, b := range blogs {
		if _, err := s.db.Exec(`INSERT INTO blogs (title, slug, excerpt, content, image_url, tags, published, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)`,
			b.Title, b.Slug, b.Excerpt, b.Content, b.ImageURL, b.Tags, ts, ts); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedExperience() error {
	rows := []Experience{
		{Company: "Tech Company", Position: "Senior Software Developer", Description: "Building scalable web applications and leading development teams.", StartDate: "2022-01", Current: true},
		{Company: "Startup Inc", Position: "Full Stack Developer", Description: "Developed full-stack applications using modern technologies.", StartDate: "2020-06", EndDate: "2022-01"},
	}
	for _, e := range rows {
		if _, err := s.db.Exec(`INSERT INTO experience (company, position, description, start_date, end_date, current) VALUES (?, ?, ?, ?, ?, ?)`,
			e.Company, e.Position, e.Description, e.StartDate, nullIfEmpty(e.EndDate), boolInt(e.Current)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedEducation() error {
	_, err := s.db.Exec(`INSERT INTO education (institution, degree, field, start_date, end_date, description) VALUES (?, ?, ?, ?, ?, ?)`,
		"University of Technology", "Bachelor of Science", "Computer Science and Engineering",
		"2016", "2020", "Focused on software engineering and machine learning.")
	return err
}

func (s *Store) seedServices() error {
	services := []Service{
		{Name: "UI/UX Design", Description: "Creating beautiful and intuitive user interfaces with modern design principles.", Icon: "🎨", OrderIndex: 1},
		{Name: "Web Design", Description: "Building responsive, modern websites that look great on all devices.", Icon: "🌐", OrderIndex: 2},
		{Name: "Landing Page Design", Description: "High-converting landing pages designed to maximize your business goals.", Icon: "📄", OrderIndex: 3},
	}
	for _, sv := range services {
		if _, err := s.db.Exec(`INSERT INTO services (name, description, image_url, icon, order_index) VALUES (?, ?, '', ?, ?)`,
			sv.Name, sv.Description, sv.Icon, sv.OrderIndex); err != nil {
			return err
		}
	}
	return nil
}

var defaultSiteContent = []SiteContentItem{
	{"hero_greeting", "Hello!", "hero", "Hero section greeting badge"},
	{"hero_intro", "I'm", "hero", "Text before name"},
	{"hero_subtitle", "Full Stack Developer & AI Enthusiast", "hero", "Hero subtitle/title"},
	{"hero_description", "Passionate about building innovative solutions and exploring cutting-edge technologies.", "hero", "Hero description text"},
	{"hero_btn_portfolio", "Portfolio", "hero", "Portfolio button text"},
	{"hero_btn_hire", "Hire me", "hero", "Hire me button text"},
	{"hero_btn_resume", "Download Resume", "hero", "Download resume button text"},
	{"hero_experience_years", "10", "hero", "Years of experience number"},
	{"hero_experience_label", "Years Experience", "hero", "Experience label text"},

	{"about_badge", "About Me", "about", "About section badge text"},
	{"about_heading", "Get a website that will make a lasting impression on your audience!!!", "about", "About section main heading"},
	{"about_label", "Introduction", "about", "About page label"},
	{"about_title_prefix", "About", "about", "About page title prefix"},
	{"about_title", "Me", "about", "About page title"},
	{"about_subtitle", "Get to know more about my background, skills, and experience", "about", "About page subtitle"},
	{"about_experience_years", "5+", "about", "Years of experience badge"},
	{"about_experience_label", "Years Experience", "about", "Experience badge label"},
	{"about_resume_btn", "Download Resume", "about", "Download resume button text"},
	{"about_contact_btn", "Contact Me", "about", "Contact me button text"},

	{"tech_title", "Tech Stack", "tech", "Tech stack section title"},
	{"tech_items", "Go,Rust,Python,AI,Automation", "tech", "Comma-separated tech items"},

	{"skills_title", "My Skills", "skills", "Skills section title"},
	{"skills_subtitle", "Technologies and tools I work with", "skills", "Skills section subtitle"},
	{"skills_label", "Expertise", "skills", "Skills section label"},
	{"skills_title_prefix", "Technical", "skills", "Skills title prefix"},

	{"services_title_prefix", "My", "services", "Services title prefix"},
	{"services_title", "Services", "services", "Services section title"},
	{"services_subtitle", "Delivering exceptional digital experiences tailored to your needs", "services", "Services section subtitle"},

	{"hire_title_prefix", "Why", "hire", "Hire title prefix"},
	{"hire_title", "Hire me", "hire", "Hire section title"},
	{"hire_btn", "Hire Me", "hire", "Hire button text"},
	{"stats_experience", "10+", "hire", "Years of experience stat"},
	{"stats_experience_label", "Years of Experience", "hire", "Experience stat label"},
	{"stats_projects", "4K", "hire", "Projects completed stat"},
	{"stats_projects_label", "Projects Completed", "hire", "Projects stat label"},
	{"stats_customers", "12K", "hire", "Happy customers stat"},
	{"stats_customers_label", "Happy Customers", "hire", "Customers stat label"},

	{"process_title_prefix", "Our Work", "process", "Process title prefix"},
	{"process_title", "Process", "process", "Process section title"},
	{"process_subtitle", "A streamlined approach to bringing your ideas to life", "process", "Process section subtitle"},

	{"portfolio_title_prefix", "Look at my", "portfolio", "Portfolio title prefix"},
	{"portfolio_title", "Portfolio", "portfolio", "Portfolio section title"},
	{"portfolio_subtitle", "Some of my recent work", "portfolio", "Portfolio section subtitle"},
	{"portfolio_btn", "View All Projects", "portfolio", "View all projects button"},

	{"cta_title_prefix", "Let's Work", "cta", "CTA title prefix"},
	{"cta_title", "Together", "cta", "CTA section title"},
	{"cta_subtitle", "Have a project in mind? Let's create something amazing together.", "cta", "CTA section subtitle"},
	{"cta_btn", "Get in Touch", "cta", "CTA button text"},

	{"projects_title", "Featured Projects", "projects", "Projects section title"},
	{"projects_subtitle", "Some of my recent work", "projects", "Projects section subtitle"},
	{"projects_btn_view", "View Project", "projects", "View project button text"},
	{"projects_btn_all", "View All Projects", "projects", "View all projects button text"},

	{"blog_title", "Latest Articles", "blog", "Blog section title"},
	{"blog_subtitle", "Thoughts, tutorials, and insights", "blog", "Blog section subtitle"},
	{"blog_btn_read", "Read More", "blog", "Read more button text"},
	{"blog_btn_all", "View All Articles", "blog", "View all articles button text"},

	{"contact_label", "Contact", "contact", "Contact page label"},
	{"contact_title_prefix", "Get in", "contact", "Contact title prefix"},
	{"contact_title", "Touch", "contact", "Contact section title"},
	{"contact_subtitle", "Have a question or want to work together? Feel free to reach out!", "contact", "Contact section subtitle"},
	{"contact_form_title", "Send a Message", "contact", "Contact form title"},
	{"contact_btn", "Send Message", "contact", "Send message button text"},
	{"contact_success", "Thank you! Your message has been sent successfully.", "contact", "Success message after form submission"},

	{"form_name_label", "Name", "form", "Name field label"},
	{"form_name_placeholder", "Your name", "form", "Name field placeholder"},
	{"form_email_label", "Email", "form", "Email field label"},
	{"form_email_placeholder", "your@email.com", "form", "Email field placeholder"},
	{"form_subject_label", "Subject", "form", "Subject field label"},
	{"form_subject_placeholder", "What's this about?", "form", "Subject field placeholder"},
	{"form_message_label", "Message", "form", "Message field label"},
	{"form_message_placeholder", "Your message...", "form", "Message field placeholder"},

	{"roadmap_step1_title", "Concept", "roadmap", "Step 1 title"},
	{"roadmap_step1_desc", "Understanding your vision, goals, and requirements to create a solid foundation.", "roadmap", "Step 1 description"},
	{"roadmap_step2_title", "Design", "roadmap", "Step 2 title"},
	{"roadmap_step2_desc", "Creating beautiful, intuitive interfaces that engage and delight users.", "roadmap", "Step 2 description"},
	{"roadmap_step3_title", "Development", "roadmap", "Step 3 title"},
	{"roadmap_step3_desc", "Building robust, scalable solutions with clean, maintainable code.", "roadmap", "Step 3 description"},

	{"footer_copyright", "© 2024", "footer", "Footer copyright year"},
	{"footer_rights", "All rights reserved.", "footer", "Footer rights text"},
	{"footer_quick_links", "Quick Links", "footer", "Footer quick links title"},
	{"footer_connect", "Connect", "footer", "Footer connect title"},
	{"footer_tagline", "Built with Go, Echo and SQLite", "footer", "Footer tagline"},

	{"education_label", "Learning", "education", "Education section label"},
	{"education_title", "Education", "education", "Education section title"},

	{"experience_label", "Career", "experience", "Experience section label"},
	{"experience_title_prefix", "Work", "experience", "Experience title prefix"},
	{"experience_title", "Experience", "experience", "Experience section title"},

	{"nav_home", "Home", "nav", "Home navigation link"},
	{"nav_about", "About", "nav", "About navigation link"},
	{"nav_projects", "Projects", "nav", "Projects navigation link"},
	{"nav_blog", "Blog", "nav", "Blog navigation link"},
	{"nav_contact", "Contact", "nav", "Contact navigation link"},
}
