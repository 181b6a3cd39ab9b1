package github

var getUserStarredReposSchema = []byte(`
{
	"type": "object",
	"properties": {
		"username": {
			"type": "string",
			"description": "GitHub username whose starred repositories to list"
		},
		"page": {
			"type": "integer",
			"description": "Page number, starting at 1",
			"default": 1
		},
		"per_page": {
			"type": "integer",
			"description": "Results per page, maximum 100",
			"default": 30
		},
		"sort": {
			"type": "string",
			"enum": ["created", "updated"],
			"description": "Sort order of the starred list",
			"default": "created"
		},
		"token": {
			"type": "string",
			"description": "GitHub token; pass one if you hit anonymous API rate limits"
		}
	},
	"required": ["username"]
}`)

var searchStarredReposSchema = []byte(`
{
	"type": "object",
	"properties": {
		"username": {
			"type": "string",
			"description": "GitHub username whose starred repositories to search"
		},
		"query": {
			"type": "string",
			"description": "Search text; wildcard characters (*, ?, [, {) switch to glob matching on the repository name"
		},
		"language": {
			"type": "string",
			"description": "Restrict matches to repositories in this primary language"
		},
		"token": {
			"type": "string",
			"description": "GitHub token; pass one if you hit anonymous API rate limits"
		}
	},
	"required": ["username", "query"]
}`)

var getRepoInfoSchema = []byte(`
{
	"type": "object",
	"properties": {
		"owner": {
			"type": "string",
			"description": "Repository owner"
		},
		"repo": {
			"type": "string",
			"description": "Repository name"
		},
		"token": {
			"type": "string",
			"description": "GitHub token; pass one if you hit anonymous API rate limits"
		}
	},
	"required": ["owner", "repo"]
}`)

var checkIfStarredSchema = []byte(`
{
	"type": "object",
	"properties": {
		"owner": {
			"type": "string",
			"description": "Repository owner"
		},
		"repo": {
			"type": "string",
			"description": "Repository name"
		},
		"token": {
			"type": "string",
			"description": "GitHub token of the user whose stars to check; the server default is used when omitted"
		}
	},
	"required": ["owner", "repo", "token"]
}`)

var starRepoSchema = []byte(`
{
	"type": "object",
	"properties": {
		"owner": {
			"type": "string",
			"description": "Repository owner"
		},
		"repo": {
			"type": "string",
			"description": "Repository name"
		},
		"token": {
			"type": "string",
			"description": "GitHub token with starring permission; the server default is used when omitted"
		}
	},
	"required": ["owner", "repo", "token"]
}`)

var unstarRepoSchema = []byte(`
{
	"type": "object",
	"properties": {
		"owner": {
			"type": "string",
			"description": "Repository owner"
		},
		"repo": {
			"type": "string",
			"description": "Repository name"
		},
		"token": {
			"type": "string",
			"description": "GitHub token with starring permission; the server default is used when omitted"
		}
	},
	"required": ["owner", "repo", "token"]
}`)

var getStarredStatsSchema = []byte(`
{
	"type": "object",
	"properties": {
		"username": {
			"type": "string",
			"description": "GitHub username whose starred repositories to aggregate"
		},
		"token": {
			"type": "string",
			"description": "GitHub token; pass one if you hit anonymous API rate limits"
		}
	},
	"required": ["username"]
}`)

var getRepoLanguagesSchema = []byte(`
{
	"type": "object",
	"properties": {
		"owner": {
			"type": "string",
			"description": "Repository owner"
		},
		"repo": {
			"type": "string",
			"description": "Repository name"
		},
		"token": {
			"type": "string",
			"description": "GitHub token; pass one if you hit anonymous API rate limits"
		}
	},
	"required": ["owner", "repo"]
}`)
