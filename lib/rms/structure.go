// Package rms declares the project layout of the Research Management
// System desktop app. The tables below are the scaffolder's whole
// knowledge of the app: which directories exist and which placeholder
// files each one starts with.
package rms

import (
	"github.com/rms-studio/scaffold/lib/model"
)

func Structure() *model.Structure {
	return &model.Structure{
		Categories: []model.Category{
			{Name: "frontend", Groups: frontend()},
			{Name: "backend", Groups: backend()},
			{Name: "tests", Groups: tests()},
			{Name: "docs", Groups: docs()},
		},
		Extras: []string{
			"src-tauri/src/error.rs",
		},
	}
}

func frontend() []model.Group {
	return []model.Group{
		{Dir: "src/components/layout", Files: []string{"AppShell.tsx", "Sidebar.tsx", "TitleBar.tsx", "StatusBar.tsx"}},
		{Dir: "src/components/project", Files: []string{"ProjectList.tsx", "ProjectCard.tsx", "CreateProject.tsx", "ProjectSettings.tsx"}},
		{Dir: "src/components/explorer", Files: []string{"FileTree.tsx", "FileNode.tsx", "ContextMenu.tsx", "FilePreview.tsx"}},
		{Dir: "src/components/undo-tree", Files: []string{"UndoTree.tsx", "TreeNode.tsx", "TreeControls.tsx", "NodeTooltip.tsx"}},
		{Dir: "src/components/diff", Files: []string{"DiffViewer.tsx", "SideBySide.tsx", "UnifiedDiff.tsx", "BinaryDiff.tsx"}},
		{Dir: "src/components/tasks", Files: []string{"TaskList.tsx", "KanbanBoard.tsx", "TaskCard.tsx", "TaskForm.tsx", "SubtaskTree.tsx"}},
		{Dir: "src/components/notes", Files: []string{"NoteEditor.tsx", "NotesList.tsx", "Toolbar.tsx"}},
		{Dir: "src/components/notes/Extensions", Files: []string{".gitkeep"}},
		{Dir: "src/components/search", Files: []string{"CommandPalette.tsx", "SearchResults.tsx", "Filters.tsx"}},
		{Dir: "src/components/backup", Files: []string{"BackupManager.tsx", "BackupList.tsx", "RestoreWizard.tsx"}},
		{Dir: "src/components/collaboration", Files: []string{"ShareDialog.tsx", "Comments.tsx", "ActivityFeed.tsx", "MemberList.tsx"}},
		{Dir: "src/components/analytics", Files: []string{"Dashboard.tsx", "Calendar.tsx", "Charts.tsx", "Timeline.tsx"}},
		{Dir: "src/components/settings", Files: []string{"SettingsPanel.tsx", "Preferences.tsx", "ThemeSelector.tsx", "Shortcuts.tsx"}},
		{Dir: "src/components/help", Files: []string{"Tutorial.tsx", "HelpDialog.tsx", "VideoLibrary.tsx", "KnowledgeBase.tsx"}},
		{Dir: "src/components/common", Files: []string{"Button.tsx", "Modal.tsx", "Tooltip.tsx", "LoadingSpinner.tsx", "ErrorBoundary.tsx", "EmptyState.tsx"}},
		{Dir: "src/stores", Files: []string{"projectStore.ts", "fileStore.ts", "taskStore.ts", "noteStore.ts", "undoTreeStore.ts", "uiStore.ts", "settingsStore.ts"}},
		{Dir: "src/hooks", Files: []string{"useProject.ts", "useFileSystem.ts", "useGit.ts", "useAutoSave.ts", "useKeyboard.ts", "useTheme.ts", "useDebounce.ts"}},
		{Dir: "src/services/api", Files: []string{"tauri.ts", "database.ts", "filesystem.ts"}},
		{Dir: "src/services/git", Files: []string{"gitService.ts", "diffService.ts", "historyService.ts", "conflictResolver.ts"}},
		{Dir: "src/services/backup", Files: []string{"backupService.ts", "restoreService.ts", "zipService.ts"}},
		{Dir: "src/services/search", Files: []string{"searchEngine.ts", "fuzzySearch.ts", "nlpParser.ts"}},
		{Dir: "src/services/sync", Files: []string{"fileWatcher.ts", "syncManager.ts", "conflictDetector.ts"}},
		{Dir: "src/lib/utils", Files: []string{"dateUtils.ts", "fileUtils.ts", "pathUtils.ts", "validators.ts"}},
		{Dir: "src/lib/constants", Files: []string{"routes.ts", "shortcuts.ts", "config.ts"}},
		{Dir: "src/lib/types", Files: []string{"project.ts", "task.ts", "note.ts", "git.ts", "index.ts"}},
		{Dir: "src/styles", Files: []string{"globals.css", "animations.css"}},
		{Dir: "src/styles/themes", Files: []string{"light.css", "dark.css", "highContrast.css"}},
		{Dir: "src/routes", Files: []string{"__root.tsx", "index.tsx", "settings.tsx"}},
		{Dir: "src/routes/projects", Files: []string{"index.tsx", "$projectId.tsx"}},
		{Dir: "src/assets/icons", Files: []string{".gitkeep"}},
		{Dir: "src/assets/images", Files: []string{".gitkeep"}},
		{Dir: "src/assets/fonts", Files: []string{".gitkeep"}},
	}
}

func backend() []model.Group {
	return []model.Group{
		{Dir: "src-tauri/src/commands", Files: []string{"mod.rs", "project.rs", "filesystem.rs", "git.rs", "database.rs", "backup.rs", "system.rs"}},
		{Dir: "src-tauri/src/services", Files: []string{"mod.rs", "git_service.rs", "file_watcher.rs", "encryption.rs", "backup_service.rs"}},
		{Dir: "src-tauri/src/utils", Files: []string{"mod.rs", "path.rs", "hash.rs", "compression.rs"}},
		{Dir: "src-tauri/src/state", Files: []string{"mod.rs", "app_state.rs"}},
	}
}

func tests() []model.Group {
	return []model.Group{
		{Dir: "tests/unit/services", Files: []string{".gitkeep"}},
		{Dir: "tests/unit/hooks", Files: []string{".gitkeep"}},
		{Dir: "tests/unit/utils", Files: []string{".gitkeep"}},
		{Dir: "tests/integration", Files: []string{"git.test.ts", "database.test.ts", "fileSystem.test.ts"}},
		{Dir: "tests/e2e", Files: []string{"project-creation.spec.ts", "undo-tree.spec.ts", "task-management.spec.ts"}},
	}
}

func docs() []model.Group {
	return []model.Group{
		{Dir: "docs", Files: []string{"ARCHITECTURE.md", "API.md", "CONTRIBUTING.md", "USER_GUIDE.md"}},
		{Dir: "scripts", Files: []string{"setup.sh", "build.sh", "release.sh"}},
		{Dir: ".github/workflows", Files: []string{"ci.yml", "release.yml"}},
	}
}
