package config

const profilesTemplate = `{
    "default": "default",
    "settingsPath": "~/.claude/settings.json",
    "profiles": {
        "default": {
            "ANTHROPIC_BASE_URL": "https://api.anthropic.com",
            "ANTHROPIC_AUTH_TOKEN": "sk-",
            "ANTHROPIC_MODEL": "claude-sonnet-4-5",
            "ANTHROPIC_SMALL_FAST_MODEL": "claude-haiku-4-5"
        }
    },
    "descriptions": {
        "default": "Anthropic official API"
    }
}
`

const fullProfilesTemplate = `{
    "default": "default",
    "settingsPath": "~/.claude/settings.json",
    "profiles": {
        "default": {
            "ANTHROPIC_BASE_URL": "https://api.anthropic.com",
            "ANTHROPIC_AUTH_TOKEN": "sk-",
            "ANTHROPIC_MODEL": "claude-sonnet-4-5",
            "ANTHROPIC_SMALL_FAST_MODEL": "claude-haiku-4-5"
        },
        "deepseek": {
            "ANTHROPIC_BASE_URL": "https://api.deepseek.com/anthropic",
            "ANTHROPIC_AUTH_TOKEN": "sk-",
            "ANTHROPIC_MODEL": "deepseek-chat",
            "ANTHROPIC_SMALL_FAST_MODEL": "deepseek-chat"
        },
        "kimi": {
            "ANTHROPIC_BASE_URL": "https://api.moonshot.cn/anthropic",
            "ANTHROPIC_AUTH_TOKEN": "sk-kimi-",
            "ANTHROPIC_MODEL": "kimi-k2-turbo-preview",
            "ANTHROPIC_SMALL_FAST_MODEL": "kimi-k2-turbo-preview"
        },
        "glm": {
            "ANTHROPIC_BASE_URL": "https://open.bigmodel.cn/api/anthropic",
            "ANTHROPIC_AUTH_TOKEN": "",
            "ANTHROPIC_MODEL": "glm-4.6",
            "ANTHROPIC_SMALL_FAST_MODEL": "glm-4.5-air"
        },
        "modelscope": {
            "ANTHROPIC_BASE_URL": "https://api-inference.modelscope.cn",
            "ANTHROPIC_AUTH_TOKEN": "ms-",
            "ANTHROPIC_MODEL": "Qwen/Qwen3-Coder-480B-A35B-Instruct",
            "ANTHROPIC_SMALL_FAST_MODEL": "Qwen/Qwen3-Coder-30B-A3B-Instruct"
        }
    },
    "descriptions": {
        "default": "Anthropic official API",
        "deepseek": "DeepSeek Anthropic-compatible API",
        "kimi": "Moonshot Kimi K2",
        "glm": "Zhipu GLM",
        "modelscope": "ModelScope Qwen3 Coder"
    }
}
`

// Template returns the built-in profiles document. full selects the multi-provider variant.
func Template(full bool) string {
	if full {
		return fullProfilesTemplate
	}
	return profilesTemplate
}
