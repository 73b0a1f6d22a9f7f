package seed

import (
	"time"

	"toolhaven/internal/models"

	"gorm.io/datatypes"
)

// catalogCategory is a directory section shipped with the product.
type catalogCategory struct {
	Slug        string
	Name        string
	Description string
	Icon        string
	Order       int
	Published   bool
}

// catalogTool carries a tool listing plus the slugs of the category and tags
// it links to. Links are resolved by the seeder after the parents exist.
type catalogTool struct {
	models.Tool
	CategorySlug string
	TagSlugs     []string
}

// catalogPost carries a blog post plus its category slug.
type catalogPost struct {
	models.BlogPost
	CategorySlug string
}

var builtInCategories = []catalogCategory{
	{Slug: "writing", Name: "AI Writing", Description: "Assistants, copywriters, and long-form drafting tools.", Icon: "pen-tool", Order: 1, Published: true},
	{Slug: "image-generation", Name: "Image Generation", Description: "Text-to-image models and creative design tools.", Icon: "image", Order: 2, Published: true},
	{Slug: "coding", Name: "AI Coding", Description: "Code completion, review, and pair-programming assistants.", Icon: "code", Order: 3, Published: true},
	{Slug: "productivity", Name: "Productivity", Description: "Meeting notes, scheduling, and workflow automation.", Icon: "zap", Order: 4, Published: true},
	{Slug: "video", Name: "Video & Audio", Description: "Generation, editing, and transcription for media.", Icon: "video", Order: 5, Published: true},
	{Slug: "research", Name: "Research & Search", Description: "Answer engines and document analysis.", Icon: "search", Order: 6, Published: true},
}

var builtInTags = []models.Tag{
	{Slug: "free-tier", Name: "Free Tier"},
	{Slug: "open-source", Name: "Open Source"},
	{Slug: "api-access", Name: "API Access"},
	{Slug: "chrome-extension", Name: "Chrome Extension"},
	{Slug: "team-plans", Name: "Team Plans"},
	{Slug: "no-signup", Name: "No Signup"},
	{Slug: "gdpr-compliant", Name: "GDPR Compliant"},
	{Slug: "mobile-app", Name: "Mobile App"},
	{Slug: "self-hosted", Name: "Self-Hosted"},
	{Slug: "enterprise", Name: "Enterprise"},
}

var builtInTools = []catalogTool{
	{
		Tool: models.Tool{
			Slug:          "chatgpt",
			Name:          "ChatGPT",
			Tagline:       "The general-purpose AI assistant",
			Description:   "OpenAI's conversational assistant for writing, analysis, and everyday questions.",
			Website:       "https://chat.openai.com",
			PricingType:   models.PricingFreemium,
			StartingPrice: "$20/mo",
			Rating:        4.7,
			ReviewCount:   1843,
			Featured:      true,
			Trending:      true,
			Features:      datatypes.NewJSONSlice([]string{"GPT-4 class models", "Web browsing", "Code interpreter", "Custom GPTs"}),
			Pros:          datatypes.NewJSONSlice([]string{"Best-in-class reasoning", "Huge plugin ecosystem"}),
			Cons:          datatypes.NewJSONSlice([]string{"Usage caps on the free tier", "Occasional outages at peak hours"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Drafting emails", "Summarizing documents", "Brainstorming"}),
		},
		CategorySlug: "writing",
		TagSlugs:     []string{"free-tier", "api-access", "mobile-app"},
	},
	{
		Tool: models.Tool{
			Slug:          "claude",
			Name:          "Claude",
			Tagline:       "Thoughtful AI for long documents",
			Description:   "Anthropic's assistant with a large context window, strong at analysis and careful writing.",
			Website:       "https://claude.ai",
			PricingType:   models.PricingFreemium,
			StartingPrice: "$20/mo",
			Rating:        4.6,
			ReviewCount:   962,
			Featured:      true,
			Features:      datatypes.NewJSONSlice([]string{"200K token context", "File uploads", "Projects workspace"}),
			Pros:          datatypes.NewJSONSlice([]string{"Handles book-length inputs", "Nuanced, low-hallucination prose"}),
			Cons:          datatypes.NewJSONSlice([]string{"No image generation"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Contract review", "Research synthesis", "Editing"}),
		},
		CategorySlug: "writing",
		TagSlugs:     []string{"free-tier", "api-access", "team-plans"},
	},
	{
		Tool: models.Tool{
			Slug:          "midjourney",
			Name:          "Midjourney",
			Tagline:       "Art-grade image generation",
			Description:   "A Discord-based image model known for striking, stylized output.",
			Website:       "https://midjourney.com",
			PricingType:   models.PricingPaid,
			StartingPrice: "$10/mo",
			Rating:        4.5,
			ReviewCount:   1204,
			Featured:      true,
			Trending:      true,
			Features:      datatypes.NewJSONSlice([]string{"V6 model", "Style references", "Upscaling", "Vary region"}),
			Pros:          datatypes.NewJSONSlice([]string{"Unmatched aesthetic quality"}),
			Cons:          datatypes.NewJSONSlice([]string{"Discord-only workflow", "No free tier"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Concept art", "Marketing visuals", "Mood boards"}),
		},
		CategorySlug: "image-generation",
		TagSlugs:     []string{"team-plans"},
	},
	{
		Tool: models.Tool{
			Slug:          "stable-diffusion",
			Name:          "Stable Diffusion",
			Tagline:       "Open-source image generation",
			Description:   "The open image model family you can run locally or fine-tune for your own style.",
			Website:       "https://stability.ai",
			PricingType:   models.PricingFree,
			Rating:        4.3,
			ReviewCount:   688,
			Features:      datatypes.NewJSONSlice([]string{"Local inference", "LoRA fine-tuning", "ControlNet", "Inpainting"}),
			Pros:          datatypes.NewJSONSlice([]string{"Full control and privacy", "No usage fees"}),
			Cons:          datatypes.NewJSONSlice([]string{"Needs a capable GPU", "Steeper learning curve"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Product mockups", "Custom style training"}),
		},
		CategorySlug: "image-generation",
		TagSlugs:     []string{"open-source", "self-hosted", "no-signup"},
	},
	{
		Tool: models.Tool{
			Slug:          "github-copilot",
			Name:          "GitHub Copilot",
			Tagline:       "Your AI pair programmer",
			Description:   "Inline code completion and chat inside your editor, trained on public code.",
			Website:       "https://github.com/features/copilot",
			PricingType:   models.PricingPaid,
			StartingPrice: "$10/mo",
			Rating:        4.4,
			ReviewCount:   2310,
			Featured:      true,
			Features:      datatypes.NewJSONSlice([]string{"Inline completion", "Copilot Chat", "PR summaries", "CLI assist"}),
			Pros:          datatypes.NewJSONSlice([]string{"Deep editor integration", "Learns your codebase patterns"}),
			Cons:          datatypes.NewJSONSlice([]string{"Suggestions need review", "Subscription only"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Boilerplate", "Test scaffolding", "Unfamiliar APIs"}),
		},
		CategorySlug: "coding",
		TagSlugs:     []string{"enterprise", "team-plans"},
	},
	{
		Tool: models.Tool{
			Slug:          "cursor",
			Name:          "Cursor",
			Tagline:       "The AI-first code editor",
			Description:   "A VS Code fork with repo-wide context, multi-file edits, and agentic workflows.",
			Website:       "https://cursor.com",
			PricingType:   models.PricingFreemium,
			StartingPrice: "$20/mo",
			Rating:        4.6,
			ReviewCount:   754,
			Trending:      true,
			Features:      datatypes.NewJSONSlice([]string{"Codebase indexing", "Composer multi-file edits", "Tab completion"}),
			Pros:          datatypes.NewJSONSlice([]string{"Understands the whole repo", "Familiar VS Code feel"}),
			Cons:          datatypes.NewJSONSlice([]string{"Heavy on memory for large repos"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Refactoring", "Feature scaffolding"}),
		},
		CategorySlug: "coding",
		TagSlugs:     []string{"free-tier", "team-plans"},
	},
	{
		Tool: models.Tool{
			Slug:          "notion-ai",
			Name:          "Notion AI",
			Tagline:       "AI inside your workspace",
			Description:   "Writing, summarizing, and Q&A layered over your existing Notion pages and databases.",
			Website:       "https://notion.so/product/ai",
			PricingType:   models.PricingPaid,
			StartingPrice: "$8/mo",
			Rating:        4.2,
			ReviewCount:   531,
			Features:      datatypes.NewJSONSlice([]string{"Workspace Q&A", "Autofill databases", "Meeting summaries"}),
			Pros:          datatypes.NewJSONSlice([]string{"Zero context switching"}),
			Cons:          datatypes.NewJSONSlice([]string{"Only useful inside Notion", "Add-on pricing"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Meeting notes", "Wiki search"}),
		},
		CategorySlug: "productivity",
		TagSlugs:     []string{"team-plans", "mobile-app"},
	},
	{
		Tool: models.Tool{
			Slug:          "elevenlabs",
			Name:          "ElevenLabs",
			Tagline:       "Lifelike AI voices",
			Description:   "Text-to-speech and voice cloning with natural intonation in 30+ languages.",
			Website:       "https://elevenlabs.io",
			PricingType:   models.PricingFreemium,
			StartingPrice: "$5/mo",
			Rating:        4.5,
			ReviewCount:   419,
			Features:      datatypes.NewJSONSlice([]string{"Voice cloning", "Multilingual TTS", "Dubbing studio"}),
			Pros:          datatypes.NewJSONSlice([]string{"Most natural voices available"}),
			Cons:          datatypes.NewJSONSlice([]string{"Character limits on lower tiers"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Audiobooks", "Video narration", "Localization"}),
		},
		CategorySlug: "video",
		TagSlugs:     []string{"free-tier", "api-access"},
	},
	{
		Tool: models.Tool{
			Slug:          "perplexity",
			Name:          "Perplexity",
			Tagline:       "The answer engine",
			Description:   "Search that answers with cited sources instead of a list of links.",
			Website:       "https://perplexity.ai",
			PricingType:   models.PricingFreemium,
			StartingPrice: "$20/mo",
			Rating:        4.4,
			ReviewCount:   847,
			Trending:      true,
			Features:      datatypes.NewJSONSlice([]string{"Cited answers", "Focus modes", "File analysis"}),
			Pros:          datatypes.NewJSONSlice([]string{"Every claim is sourced", "Great for current events"}),
			Cons:          datatypes.NewJSONSlice([]string{"Weaker at creative writing"}),
			UseCases:      datatypes.NewJSONSlice([]string{"Fact-checking", "Market research"}),
		},
		CategorySlug: "research",
		TagSlugs:     []string{"free-tier", "mobile-app", "api-access"},
	},
}

var builtInPosts = []catalogPost{
	{
		BlogPost: models.BlogPost{
			Slug:            "best-ai-writing-tools-2026",
			Title:           "The 10 Best AI Writing Tools in 2026",
			Excerpt:         "We tested every major AI writing assistant on real briefs. Here is what actually holds up.",
			Content:         "<h2>How we tested</h2><p>Each tool got the same five briefs: a landing page, a cold email, a 2,000-word guide, a press release, and a product description. We scored factual accuracy, tone control, and editing effort.</p><h2>The shortlist</h2><p>ChatGPT and Claude remain the general-purpose leaders, while purpose-built tools win on workflow.</p>",
			MetaTitle:       "10 Best AI Writing Tools (2026) — Tested & Ranked",
			MetaDescription: "Hands-on ranking of the best AI writing assistants in 2026, scored on accuracy, tone control, and editing effort.",
			FocusKeyword:    "best ai writing tools",
			CoverImage:      "/images/posts/ai-writing-tools-2026.webp",
			Featured:        true,
		},
		CategorySlug: "writing",
	},
	{
		BlogPost: models.BlogPost{
			Slug:            "chatgpt-vs-claude-for-work",
			Title:           "ChatGPT vs Claude: Which Should Your Team Pay For?",
			Excerpt:         "Both cost $20 a month. The right choice depends on what your team actually does all day.",
			Content:         "<h2>Where ChatGPT wins</h2><p>Plugins, image generation, and the largest ecosystem of integrations.</p><h2>Where Claude wins</h2><p>Long-document work. Feeding it a 150-page contract and asking pointed questions is its home turf.</p><h2>Verdict</h2><p>Writers and analysts: Claude. Generalists and builders: ChatGPT.</p>",
			MetaTitle:       "ChatGPT vs Claude for Work (2026 Comparison)",
			MetaDescription: "A practical comparison of ChatGPT and Claude for business teams: strengths, pricing, and which to pick.",
			FocusKeyword:    "chatgpt vs claude",
			CoverImage:      "/images/posts/chatgpt-vs-claude.webp",
			Featured:        true,
		},
		CategorySlug: "writing",
	},
	{
		BlogPost: models.BlogPost{
			Slug:            "midjourney-beginners-guide",
			Title:           "Midjourney for Beginners: From Zero to First Render",
			Excerpt:         "Everything you need to generate your first image, explained without Discord jargon.",
			Content:         "<h2>Setting up</h2><p>Join the Midjourney Discord, subscribe, and find a newbie channel. Your first prompt goes after the /imagine command.</p><h2>Prompt anatomy</h2><p>Subject, style, lighting, composition. Parameters like --ar and --v go at the end.</p>",
			MetaTitle:       "Midjourney Beginner's Guide (2026)",
			MetaDescription: "Step-by-step Midjourney tutorial for complete beginners: setup, prompt anatomy, and parameters.",
			FocusKeyword:    "midjourney tutorial",
			CoverImage:      "/images/posts/midjourney-guide.webp",
		},
		CategorySlug: "image-generation",
	},
	{
		BlogPost: models.BlogPost{
			Slug:            "ai-coding-assistants-compared",
			Title:           "Copilot, Cursor, and Friends: AI Coding Assistants Compared",
			Excerpt:         "We ran the same refactoring tasks through five assistants. The spread was bigger than expected.",
			Content:         "<h2>The test</h2><p>Three tasks against a mid-sized Go service: add a feature, fix a race, migrate an API. We measured edits accepted versus reverted.</p><h2>Results</h2><p>Cursor's repo-wide context won the migration task outright. Copilot stayed the smoothest for in-flow completion.</p>",
			MetaTitle:       "AI Coding Assistants Compared (2026)",
			MetaDescription: "GitHub Copilot vs Cursor and other AI coding assistants, benchmarked on real refactoring tasks.",
			FocusKeyword:    "ai coding assistants",
			CoverImage:      "/images/posts/coding-assistants.webp",
			Featured:        true,
		},
		CategorySlug: "coding",
	},
	{
		BlogPost: models.BlogPost{
			Slug:            "automate-meeting-notes-with-ai",
			Title:           "How to Automate Your Meeting Notes with AI",
			Excerpt:         "Stop typing during calls. A practical pipeline from recording to searchable summary.",
			Content:         "<h2>The pipeline</h2><p>Record, transcribe, summarize, file. Each step has a best-in-class tool and the whole chain takes minutes to set up.</p><h2>Caveats</h2><p>Always tell participants you are recording, and review summaries before sharing decisions.</p>",
			MetaTitle:       "Automate Meeting Notes with AI: Full Setup Guide",
			MetaDescription: "Build an automated meeting-notes pipeline with AI transcription and summarization tools.",
			FocusKeyword:    "ai meeting notes",
			CoverImage:      "/images/posts/meeting-notes.webp",
		},
		CategorySlug: "productivity",
	},
	{
		BlogPost: models.BlogPost{
			Slug:            "ai-search-engines-worth-using",
			Title:           "AI Search Engines That Are Actually Worth Using",
			Excerpt:         "Most AI search is a demo. These three have replaced Google for parts of our workflow.",
			Content:         "<h2>Perplexity</h2><p>The citation-first answer engine. Its focus modes make academic and news research genuinely faster.</p><h2>When to stick with Google</h2><p>Navigation, shopping, and anything local. AI answers still lag for these.</p>",
			MetaTitle:       "Best AI Search Engines (2026)",
			MetaDescription: "The AI search engines worth switching to in 2026, and the searches where Google still wins.",
			FocusKeyword:    "ai search engine",
			CoverImage:      "/images/posts/ai-search.webp",
		},
		CategorySlug: "research",
	},
}

var builtInDeals = []models.Deal{
	{ID: "notion-ai-20", ToolName: "Notion AI", Discount: "20% off annual plans", Code: "HAVEN20", Category: "Productivity", URL: "https://notion.so/product/ai", IsActive: true, Order: 1},
	{ID: "elevenlabs-3mo", ToolName: "ElevenLabs", Discount: "3 months free on Creator", Code: "CREATE3", Category: "Video & Audio", URL: "https://elevenlabs.io", IsActive: true, Order: 2, ExpiresAt: timePtr(time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC))},
	{ID: "cursor-edu", ToolName: "Cursor", Discount: "Free Pro for students", Category: "AI Coding", URL: "https://cursor.com/students", IsActive: true, Order: 3},
	{ID: "midjourney-annual", ToolName: "Midjourney", Discount: "2 months free with annual billing", Category: "Image Generation", URL: "https://midjourney.com", IsActive: true, Order: 4},
	{ID: "perplexity-pro-trial", ToolName: "Perplexity", Discount: "7-day Pro trial", Category: "Research & Search", URL: "https://perplexity.ai", IsActive: true, Order: 5, ExpiresAt: timePtr(time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC))},
	{ID: "copilot-team-50", ToolName: "GitHub Copilot", Discount: "50% off first year for teams under 10", Code: "SMALLTEAM", Category: "AI Coding", URL: "https://github.com/features/copilot", IsActive: false, Order: 6},
}

var builtInComparisons = []models.Comparison{
	{
		Slug:        "chatgpt-vs-claude",
		Title:       "ChatGPT vs Claude",
		Verdict:     "Claude",
		VerdictText: "Claude edges it for professional writing and long-document analysis; ChatGPT remains the better all-rounder.",
		Published:   true,
	},
	{
		Slug:        "midjourney-vs-stable-diffusion",
		Title:       "Midjourney vs Stable Diffusion",
		Verdict:     "Midjourney",
		VerdictText: "Midjourney wins on out-of-the-box quality. Choose Stable Diffusion when you need local control or fine-tuning.",
		Published:   true,
	},
	{
		Slug:        "copilot-vs-cursor",
		Title:       "GitHub Copilot vs Cursor",
		Verdict:     "Cursor",
		VerdictText: "Cursor's repo-wide context makes it the stronger daily driver, though Copilot integrates better with existing editors.",
		Published:   false,
	},
}

func timePtr(t time.Time) *time.Time {
	return &t
}
